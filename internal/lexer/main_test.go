package lexer

import (
	"os"
	"testing"

	"stelaro/internal/symbol"
)

func TestMain(m *testing.M) {
	symbol.InstallSession(symbol.New())
	code := m.Run()
	symbol.TeardownSession()
	os.Exit(code)
}
