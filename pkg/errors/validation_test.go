package errors

import (
	"testing"
	"time"
)

func TestValidateQuantum(t *testing.T) {
	tests := []struct {
		input   int
		wantErr bool
	}{
		{1, false},
		{500, false},
		{0, true},
		{-3, true},
	}

	for _, tt := range tests {
		err := ValidateQuantum(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateQuantum(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidQuantum) {
			t.Errorf("ValidateQuantum(%d) code = %v", tt.input, GetCode(err))
		}
	}
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"nominal", 1500, false},
		{"single", 1, false},
		{"max", MaxLength, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", MaxLength + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLength(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFPS(t *testing.T) {
	if err := ValidateFPS(60); err != nil {
		t.Errorf("ValidateFPS(60) = %v", err)
	}
	if err := ValidateFPS(0); err == nil {
		t.Error("ValidateFPS(0) should fail")
	}
	if err := ValidateFPS(5000); err == nil {
		t.Error("ValidateFPS(5000) should fail")
	}
}

func TestValidatePause(t *testing.T) {
	if err := ValidatePause(0); err != nil {
		t.Errorf("ValidatePause(0) = %v", err)
	}
	if err := ValidatePause(time.Second); err != nil {
		t.Errorf("ValidatePause(1s) = %v", err)
	}
	if err := ValidatePause(-time.Millisecond); err == nil {
		t.Error("negative pause should fail")
	}
}
