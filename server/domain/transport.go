package domain

import "context"

//go:generate go tool mockgen -destination=./mocks/transport_mock.go -package=mocks . Transport

// Transport は1接続の読み書きを抽象化します。
type Transport interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	// Ping は対向の応答を待ち、接続が死んでいればエラーを返します。
	Ping(ctx context.Context) error
	Close(code int32, reason string) error
}
