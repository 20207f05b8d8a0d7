package controllers

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestRowFound(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantFound bool
		wantErr   bool
	}{
		{"row present", nil, true, false},
		{"row absent", gorm.ErrRecordNotFound, false, false},
		{"wrapped absent", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), false, false},
		{"driver failure", errors.New("driver: bad connection"), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := rowFound(tt.err)
			if found != tt.wantFound {
				t.Errorf("found = %v, expected %v", found, tt.wantFound)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, expected error: %v", err, tt.wantErr)
			}
		})
	}
}
