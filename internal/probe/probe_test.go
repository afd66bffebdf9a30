package probe

import (
	"errors"
	"testing"
)

func TestClassifyRunError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Result
	}{
		{"no route", errors.New("write udp 10.0.0.1:0: connect: no route to host"), DownNoRoute},
		{"network unreachable", errors.New("connect: network is unreachable"), DownNoRoute},
		{"dns failure", errors.New("lookup filer01: no such host"), DownNameResolutionFailed},
		{"generic socket error", errors.New("read udp: connection refused"), DownUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyRunError(tt.err)
			if result != tt.expected {
				t.Errorf("classifyRunError(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		result   Result
		expected string
	}{
		{Up, "up"},
		{DownUnreachable, "100% packet loss"},
		{DownNameResolutionFailed, "name resolution failed"},
		{DownNoRoute, "no route to host"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.result.String(); got != tt.expected {
				t.Errorf("Result(%d).String() = %q, want %q", tt.result, got, tt.expected)
			}
		})
	}
}
