package seed

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/egannguyen/seller-dashboard/internal/entity"
)

func TestDemoData(t *testing.T) {
	c := qt.New(t)

	products, items := demoData("seller-x")

	ids := make(map[string]bool, len(products))
	var owned int
	for _, p := range products {
		c.Assert(ids[p.ID], qt.IsFalse, qt.Commentf("duplicate product %s", p.ID))
		ids[p.ID] = true
		c.Assert(p.ProductRevenue, qt.Equals, 0.0)
		if p.PostedByID == "seller-x" {
			owned++
		} else {
			c.Assert(p.PostedByID, qt.Equals, otherSellerID)
		}
	}
	c.Assert(owned, qt.Equals, 6)

	itemIDs := make(map[string]bool, len(items))
	for _, item := range items {
		c.Assert(ids[item.ProductID], qt.IsTrue, qt.Commentf("cart line for unknown product %s", item.ProductID))
		c.Assert(itemIDs[item.ID], qt.IsFalse)
		itemIDs[item.ID] = true
		c.Assert(item.Quantity > 0, qt.IsTrue)
	}
}

func TestDemoSeller(t *testing.T) {
	c := qt.New(t)

	u := demoSeller("seller-x")
	c.Assert(u.ID, qt.Equals, "seller-x")
	c.Assert(u.Role, qt.Equals, entity.RoleSeller)
	c.Assert(u.IsSeller(), qt.IsTrue)
}
