package utils

import "os"

// GetEnvDefault は環境変数 key の値を返します。未設定または空のときは
// defaultValue にフォールバックします。
func GetEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
