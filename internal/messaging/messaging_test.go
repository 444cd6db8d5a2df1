package messaging_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/egannguyen/seller-dashboard/internal/messaging"
)

func TestNop(t *testing.T) {
	c := qt.New(t)

	var p messaging.Publisher = messaging.Nop{}
	c.Assert(p.PublishEvent(context.Background(), "topic", "key", struct{}{}), qt.IsNil)
	c.Assert(p.Close(), qt.IsNil)
}
