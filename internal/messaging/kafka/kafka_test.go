package kafka

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestPublishEvent_Unmarshalable(t *testing.T) {
	c := qt.New(t)

	p := NewKafkaBroker([]string{"localhost:9092"})
	c.Cleanup(func() { p.Close() })

	err := p.PublishEvent(context.Background(), "products.revenue", "p1", make(chan int))
	c.Assert(err, qt.ErrorMatches, "failed to marshal event: .*")
}

func TestNewKafkaBroker_Writer(t *testing.T) {
	c := qt.New(t)

	p := NewKafkaBroker([]string{"k1:9092", "k2:9092"})
	w := p.(*kafkaBroker).writer

	c.Assert(w.Addr.String(), qt.Equals, "k1:9092,k2:9092")
	c.Assert(w.Topic, qt.Equals, "")
	c.Assert(w.AllowAutoTopicCreation, qt.IsTrue)
	c.Assert(p.Close(), qt.IsNil)
}
