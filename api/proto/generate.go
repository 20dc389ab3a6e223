// Package proto holds the notekeeper gRPC API generated from notekeeper.proto.
package proto

//go:generate protoc -I . --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative notekeeper.proto
