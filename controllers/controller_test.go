package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Senethlakshan/wanderlust-tales/common"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{common.NotFoundError(nil, "Post not found"), http.StatusNotFound},
		{common.InvalidArgumentError(nil, "bad sort"), http.StatusBadRequest},
		{common.InvalidCredentialsError(nil), http.StatusUnauthorized},
		{common.UnauthorizedError(nil, "no session"), http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", common.NotFoundError(nil, "x")), http.StatusNotFound},
		{common.SystemError(errors.New("disk")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
