package scheduler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResetter struct {
	n     int64
	err   error
	calls int
}

func (f *fakeResetter) ResetTables(ctx context.Context) (int64, error) {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("reset called without a deadline")
	}
	return f.n, f.err
}

func TestResetJobLogsAffectedRows(t *testing.T) {
	var buf bytes.Buffer
	r := &fakeResetter{n: 7}

	ResetJob(context.Background(), r, slog.New(slog.NewJSONHandler(&buf, nil)))

	assert.Equal(t, 1, r.calls)
	assert.Contains(t, buf.String(), `"msg":"tables reset"`)
	assert.Contains(t, buf.String(), `"affected_rows":7`)
}

func TestResetJobLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	r := &fakeResetter{err: errors.New("db down")}

	ResetJob(context.Background(), r, slog.New(slog.NewJSONHandler(&buf, nil)))

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "db down")
}

func TestStart(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	c, err := Start("0 3 * * *", &fakeResetter{}, log)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	c.Stop()

	_, err = Start("not a schedule", &fakeResetter{}, log)
	assert.Error(t, err)
}
