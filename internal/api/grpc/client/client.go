// Package client talks to the notekeeper server. It implements both the
// remote note store and the key-issuance authority used by the local services.
package client

import (
	"context"
	"crypto/tls"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/notekeeper/api/proto"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// Options configures the connection.
type Options struct {
	// Token is sent as a bearer token on every call when set.
	Token string
	TLS   bool
	// CAFile pins the server certificate authority. System roots are used when empty.
	CAFile string
	// DialOptions are appended after the options built from the fields above.
	DialOptions []grpc.DialOption
}

// Client is a gRPC notekeeper client.
type Client struct {
	conn   *grpc.ClientConn
	notes  proto.NoteStoreClient
	keys   proto.KeyIssuanceClient
	logger *logger.Logger
}

var (
	_ model.NoteStore    = (*Client)(nil)
	_ model.KeyAuthority = (*Client)(nil)
)

// New creates a client for addr. The connection is established lazily.
func New(addr string, opts Options, logger *logger.Logger) (*Client, error) {
	creds, err := transportCredentials(opts)
	if err != nil {
		return nil, err
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithUnaryInterceptor(bearerInterceptor(opts.Token)),
	}
	dialOpts = append(dialOpts, opts.DialOptions...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client: %w", err)
	}

	return &Client{
		conn:   conn,
		notes:  proto.NewNoteStoreClient(conn),
		keys:   proto.NewKeyIssuanceClient(conn),
		logger: logger,
	}, nil
}

func transportCredentials(opts Options) (credentials.TransportCredentials, error) {
	if !opts.TLS {
		return insecure.NewCredentials(), nil
	}
	if opts.CAFile != "" {
		creds, err := credentials.NewClientTLSFromFile(opts.CAFile, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load CA file: %w", err)
		}
		return creds, nil
	}
	return credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}), nil
}

func bearerInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if token != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// PutNote stores or replaces a note blob.
func (c *Client) PutNote(ctx context.Context, id model.DocumentID, blob string) error {
	_, err := c.notes.PutNote(ctx, &proto.PutNoteRequest{Id: id.Bytes(), Blob: blob})
	if err != nil {
		return fromStatus("put note", err)
	}
	return nil
}

// GetNotes returns every note of the authenticated owner.
func (c *Client) GetNotes(ctx context.Context) ([]model.StoredNote, error) {
	resp, err := c.notes.GetNotes(ctx, &proto.GetNotesRequest{})
	if err != nil {
		return nil, fromStatus("get notes", err)
	}

	notes := make([]model.StoredNote, 0, len(resp.GetNotes()))
	for _, n := range resp.GetNotes() {
		id, err := model.DocumentIDFromBytes(n.GetId())
		if err != nil {
			return nil, fmt.Errorf("get notes: %w", err)
		}
		notes = append(notes, model.StoredNote{
			ID:        id,
			Owner:     n.GetOwner(),
			Blob:      n.GetBlob(),
			Timestamp: n.GetTimestamp().AsTime(),
		})
	}
	c.logger.Debug("client: fetched notes", "count", len(notes))

	return notes, nil
}

// PutSearchIndex replaces the stored search index blob.
func (c *Client) PutSearchIndex(ctx context.Context, blob string) error {
	if _, err := c.notes.PutSearchIndex(ctx, &proto.PutSearchIndexRequest{Blob: blob}); err != nil {
		return fromStatus("put search index", err)
	}
	return nil
}

// GetSearchIndex returns the stored search index blob, or model.ErrNotFound.
func (c *Client) GetSearchIndex(ctx context.Context) (string, error) {
	resp, err := c.notes.GetSearchIndex(ctx, &proto.GetSearchIndexRequest{})
	if err != nil {
		return "", fromStatus("get search index", err)
	}
	return resp.GetBlob(), nil
}

// DeleteSearchIndex drops the stored search index blob.
func (c *Client) DeleteSearchIndex(ctx context.Context) error {
	if _, err := c.notes.DeleteSearchIndex(ctx, &proto.DeleteSearchIndexRequest{}); err != nil {
		return fromStatus("delete search index", err)
	}
	return nil
}

// RequestEncryptedKey asks the authority for a key package sealed to transportPublicKey.
func (c *Client) RequestEncryptedKey(ctx context.Context, id model.DocumentID, owner string, transportPublicKey []byte) (string, error) {
	resp, err := c.keys.RequestEncryptedKey(ctx, &proto.RequestEncryptedKeyRequest{
		DocumentId:         id.Bytes(),
		Owner:              owner,
		TransportPublicKey: transportPublicKey,
	})
	if err != nil {
		return "", fromStatus("request encrypted key", err)
	}
	return resp.GetPackage(), nil
}

// RequestVerificationKey fetches the authority's verification key.
func (c *Client) RequestVerificationKey(ctx context.Context) (string, error) {
	resp, err := c.keys.RequestVerificationKey(ctx, &proto.RequestVerificationKeyRequest{})
	if err != nil {
		return "", fromStatus("request verification key", err)
	}
	return resp.GetVerificationKey(), nil
}

// fromStatus maps gRPC status codes back to model errors.
func fromStatus(op string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	case codes.PermissionDenied:
		return fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	case codes.InvalidArgument:
		return fmt.Errorf("%s: %w: %s", op, model.ErrInvalidArgument, st.Message())
	case codes.Unauthenticated:
		return fmt.Errorf("%s: %w", op, model.ErrUnauthenticated)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
