// Package proto holds the HostStore wire definition shared by the daemon
// and its clients.
//
// The generated .pb.go files are not committed; regenerate them after
// editing hoststore.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative hoststore.proto
