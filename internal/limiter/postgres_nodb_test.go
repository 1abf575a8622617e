package limiter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/************ fake pgx ************/
type fakeRow struct{ scan func(dest ...any) error }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakePool struct {
	qrErr         error
	qrBlockedTill *time.Time
	qrFailsRet    int

	lastExecSQL string
	execErr     error
}

func (f *fakePool) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.lastExecSQL = sql
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakePool) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "SELECT blocked_until"):
		return fakeRow{scan: func(dest ...any) error {
			if f.qrErr != nil {
				return f.qrErr
			}
			if f.qrBlockedTill != nil {
				*(dest[0].(*time.Time)) = *f.qrBlockedTill
			} else {
				*(dest[0].(*time.Time)) = time.Time{} // 'epoch'
			}
			return nil
		}}

	case strings.Contains(sql, "RETURNING fail_count"):
		return fakeRow{scan: func(dest ...any) error {
			if f.qrErr != nil {
				return f.qrErr
			}
			*(dest[0].(*int)) = f.qrFailsRet
			return nil
		}}
	default:
		return fakeRow{scan: func(_ ...any) error { return errors.New("unexpected query") }}
	}
}

func TestAllow_NoRow_Allows(t *testing.T) {
	fp := &fakePool{qrErr: pgx.ErrNoRows}
	l := NewPGWithQuerier(fp, 15*time.Minute, 5, 15*time.Minute)

	ok, dur, err := l.Allow(context.Background(), "u", []byte("h"))
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if !ok || dur != 0 {
		t.Fatalf("ok=%v dur=%v, want allowed with no retry-after", ok, dur)
	}
}

func TestAllow_BlockedUntilFuture_Denies(t *testing.T) {
	till := time.Now().Add(10 * time.Minute)
	fp := &fakePool{qrBlockedTill: &till}
	l := NewPGWithQuerier(fp, 15*time.Minute, 5, 15*time.Minute)

	ok, dur, err := l.Allow(context.Background(), "u", []byte("h"))
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if ok {
		t.Fatalf("want denied while block active")
	}
	if dur <= 0 || dur > 10*time.Minute {
		t.Fatalf("retry-after = %v", dur)
	}
}

func TestAllow_ExpiredBlock_Allows(t *testing.T) {
	till := time.Now().Add(-time.Minute)
	fp := &fakePool{qrBlockedTill: &till}
	l := NewPGWithQuerier(fp, 15*time.Minute, 5, 15*time.Minute)

	ok, _, err := l.Allow(context.Background(), "u", []byte("h"))
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want allowed after block expiry", ok, err)
	}
}

func TestAllow_QueryError(t *testing.T) {
	fp := &fakePool{qrErr: errors.New("boom")}
	l := NewPGWithQuerier(fp, 15*time.Minute, 5, 15*time.Minute)

	if _, _, err := l.Allow(context.Background(), "u", []byte("h")); err == nil {
		t.Fatalf("want error bubbled up")
	}
}

func TestFailure_BelowThreshold_NoBlock(t *testing.T) {
	fp := &fakePool{qrFailsRet: 2}
	l := NewPGWithQuerier(fp, 15*time.Minute, 5, 15*time.Minute)

	blocked, dur, err := l.Failure(context.Background(), "u", []byte("h"))
	if err != nil {
		t.Fatalf("Failure: %v", err)
	}
	if blocked || dur != 0 {
		t.Fatalf("blocked=%v dur=%v, want no block below threshold", blocked, dur)
	}
	if fp.lastExecSQL != "" {
		t.Fatalf("unexpected exec: %q", fp.lastExecSQL)
	}
}

func TestFailure_ThresholdReached_Blocks(t *testing.T) {
	fp := &fakePool{qrFailsRet: 5}
	l := NewPGWithQuerier(fp, 15*time.Minute, 5, 15*time.Minute)

	blocked, dur, err := l.Failure(context.Background(), "u", []byte("h"))
	if err != nil {
		t.Fatalf("Failure: %v", err)
	}
	if !blocked || dur != 15*time.Minute {
		t.Fatalf("blocked=%v dur=%v, want 15m block", blocked, dur)
	}
	if !strings.Contains(fp.lastExecSQL, "SET blocked_until") {
		t.Fatalf("block update not issued, last exec: %q", fp.lastExecSQL)
	}
}

func TestSuccess_ResetsCounters(t *testing.T) {
	fp := &fakePool{}
	l := NewPGWithQuerier(fp, 15*time.Minute, 5, 15*time.Minute)

	if err := l.Success(context.Background(), "u", []byte("h")); err != nil {
		t.Fatalf("Success: %v", err)
	}
	if !strings.Contains(fp.lastExecSQL, "fail_count=0") {
		t.Fatalf("reset not issued, last exec: %q", fp.lastExecSQL)
	}
}

func TestHashIP_Stable(t *testing.T) {
	a := HashIP("10.0.0.1")
	b := HashIP("10.0.0.1")
	c := HashIP("10.0.0.2")
	if string(a) != string(b) {
		t.Fatalf("same input must hash equal")
	}
	if string(a) == string(c) {
		t.Fatalf("different inputs must hash apart")
	}
	if len(a) != 32 {
		t.Fatalf("hash length = %d, want 32", len(a))
	}
}
