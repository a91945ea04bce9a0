package services

import (
	"time"

	"github.com/SscSPs/unit_converter_app/internal/core/ports"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

var _ ports.Clock = SystemClock{}
