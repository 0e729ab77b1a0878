package service

import (
	"io"

	"github.com/rs/zerolog"
)

// testLogger returns a silent logger for service tests.
func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
