package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateCounter(t *testing.T) {
	s := &State{}
	assert.Equal(t, int64(0), s.Count())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Next()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(50), s.Count())
}

func TestStateSkipAllIsMonotone(t *testing.T) {
	s := &State{}
	assert.False(t, s.Skipping())
	s.SkipAll()
	s.SkipAll()
	assert.True(t, s.Skipping())
}

func TestStateFullOutput(t *testing.T) {
	s := &State{}
	assert.Empty(t, s.FullOutput())
	s.SetFullOutput("a = 1\n\n")
	s.SetFullOutput("b = 2\n\n")
	assert.Equal(t, "b = 2\n\n", s.FullOutput())
}

func TestStateMarkTime(t *testing.T) {
	s := &State{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok := s.MarkTime(start)
	assert.False(t, ok)

	d, ok := s.MarkTime(start.Add(1500 * time.Microsecond))
	assert.True(t, ok)
	assert.Equal(t, 1500*time.Microsecond, d)
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{850 * time.Microsecond, "+850µs"},
		{0, "+0µs"},
		{-time.Second, "+0µs"},
		{12300 * time.Microsecond, "+12.3ms"},
		{time.Millisecond, "+1.0ms"},
		{1250 * time.Millisecond, "+1.25s"},
		{90 * time.Second, "+90.00s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.in))
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"", CmdContinue},
		{"\n", CmdContinue},
		{"x\n", CmdContinue},
		{"q\n", CmdQuit},
		{" QUIT ", CmdQuit},
		{"s", CmdSkip},
		{"skip\n", CmdSkip},
		{"m", CmdMore},
		{"More", CmdMore},
		{"t", CmdTrace},
		{"trace", CmdTrace},
		{"c", CmdCopy},
		{"copy", CmdCopy},
		{"h", CmdHelp},
		{"?", CmdHelp},
		{"help", CmdHelp},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.in))
		})
	}
}
