// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/herbario", "pgx5://u:p@db:5432/herbario"},
		{"postgresql://u@db/herbario?sslmode=disable", "pgx5://u@db/herbario?sslmode=disable"},
		{"pgx5://u@db/herbario", "pgx5://u@db/herbario"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
	}
}

func TestRunDown_RejectsNonPositiveSteps(t *testing.T) {
	err := RunDown("postgres://unused", "./does-not-matter", 0, slog.Default())
	assert.ErrorContains(t, err, "steps must be positive")
}
