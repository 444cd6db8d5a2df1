package watermill

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	qt "github.com/frankban/quicktest"

	"github.com/egannguyen/seller-dashboard/internal/entity"
)

func TestNewMessage(t *testing.T) {
	c := qt.New(t)

	msg, err := newMessage(context.Background(), "prod-1", entity.ProductRevenueUpdated{ProductID: "prod-1", Sales: 2})
	c.Assert(err, qt.IsNil)
	c.Assert(msg.UUID, qt.Not(qt.Equals), "")
	c.Assert(msg.Metadata.Get(partitionKeyMetadata), qt.Equals, "prod-1")
	c.Assert(string(msg.Payload), qt.Contains, `"product_id":"prod-1"`)
	c.Assert(string(msg.Payload), qt.Contains, `"sales":2`)
}

func TestNewMessage_Unmarshalable(t *testing.T) {
	c := qt.New(t)

	_, err := newMessage(context.Background(), "k", make(chan int))
	c.Assert(err, qt.ErrorMatches, "failed to marshal event: .*")
}

func TestSaramaConfig(t *testing.T) {
	c := qt.New(t)

	cfg := SaramaConfig("seller-dashboard")
	c.Assert(cfg.ClientID, qt.Equals, "seller-dashboard")
	c.Assert(cfg.Producer.RequiredAcks, qt.Equals, sarama.WaitForAll)
	c.Assert(cfg.Producer.Return.Successes, qt.IsTrue)
	c.Assert(cfg.Validate(), qt.IsNil)
}
