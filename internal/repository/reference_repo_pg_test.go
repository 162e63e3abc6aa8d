package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewReferenceRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewReferenceRepository(pool)
	assert.NotNil(t, repo)
}
