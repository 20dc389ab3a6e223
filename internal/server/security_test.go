package server

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper/internal/config"
)

// writeKeyPair writes a self-signed localhost certificate and its key to a temp dir.
func writeKeyPair(t *testing.T) (certFile, keyFile string) {
	t.Helper()

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "notekeeper test"},
		NotBefore:    time.Now().Add(-time.Minute),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1)},
	}
	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &priv.PublicKey, priv)
	require.NoError(t, err)
	keyDER, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)

	dir := t.TempDir()
	certFile = filepath.Join(dir, "cert.pem")
	keyFile = filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}), 0o600))

	return certFile, keyFile
}

func TestNewSecurityLayer(t *testing.T) {
	assert.IsType(t, &PlainListener{}, NewSecurityLayer(config.GRPC{}))

	layer := NewSecurityLayer(config.GRPC{EnableHTTPS: true, CertFileName: "c.pem", PrivateKeyFileName: "k.pem"})
	require.IsType(t, &TLSListener{}, layer)
	assert.Equal(t, "c.pem", layer.(*TLSListener).certFileName)
	assert.Equal(t, "k.pem", layer.(*TLSListener).privateKeyFileName)
}

func TestListen(t *testing.T) {
	certFile, keyFile := writeKeyPair(t)

	tests := []struct {
		name     string
		layer    interface{ Listen(string, string) (net.Listener, error) }
		protocol string
		addr     string
		wantErr  string
	}{
		{name: "plain", layer: NewPlainListener(), protocol: "tcp", addr: "127.0.0.1:0"},
		{name: "plain bad address", layer: NewPlainListener(), protocol: "tcp", addr: "invalid-address", wantErr: "address"},
		{name: "tls", layer: NewTLSListener(certFile, keyFile), protocol: "tcp", addr: "127.0.0.1:0"},
		{name: "tls bad address", layer: NewTLSListener(certFile, keyFile), protocol: "tcp", addr: "invalid-address", wantErr: "address"},
		{name: "tls bad protocol", layer: NewTLSListener(certFile, keyFile), protocol: "bogus", addr: "127.0.0.1:0", wantErr: "bogus"},
		{name: "tls missing files", layer: NewTLSListener("missing.crt", "missing.key"), protocol: "tcp", addr: "127.0.0.1:0", wantErr: "failed to load TLS certificate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln, err := tt.layer.Listen(tt.protocol, tt.addr)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer ln.Close()
			assert.Equal(t, "tcp", ln.Addr().Network())
		})
	}
}

func TestTLSListener_Handshake(t *testing.T) {
	certFile, keyFile := writeKeyPair(t)

	ln, err := NewTLSListener(certFile, keyFile).Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan error, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			accepted <- err
			return
		}
		defer conn.Close()
		accepted <- conn.(*tls.Conn).Handshake()
	}()

	conn, err := tls.Dial("tcp", ln.Addr().String(), &tls.Config{InsecureSkipVerify: true}) //nolint:gosec // self-signed test cert
	require.NoError(t, err)
	defer conn.Close()

	assert.GreaterOrEqual(t, conn.ConnectionState().Version, uint16(tls.VersionTLS12))
	require.NoError(t, <-accepted)
}
