package engine

import (
	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/ingredients"
)

// dayLedger tracks what has been committed within a single day. Its scope is
// per-day by design: duplication and compatibility bookkeeping never crosses
// the day boundary, so the ledger is reset at the start of each day.
type dayLedger struct {
	// classOwner maps a redundancy class to the first product registered
	// for it this day; later products in the same class are duplicates.
	classOwner map[ingredients.RedundancyClass]string
	// stepTypeOf maps a committed product id to the base family it was
	// committed under. One id must not span two different families in a day.
	stepTypeOf map[string]domain.StepType
	// bySlot holds the ordered committed products per slot for pairwise
	// conflict checks.
	bySlot map[domain.Slot][]domain.CatalogProduct
}

func newDayLedger() *dayLedger {
	return &dayLedger{
		classOwner: make(map[ingredients.RedundancyClass]string),
		stepTypeOf: make(map[string]domain.StepType),
		bySlot:     make(map[domain.Slot][]domain.CatalogProduct),
	}
}

// committed returns the products already committed to a slot, in order.
func (l *dayLedger) committed(slot domain.Slot) []domain.CatalogProduct {
	return l.bySlot[slot]
}

// register commits a product to a slot under a base family.
func (l *dayLedger) register(p domain.CatalogProduct, slot domain.Slot, st domain.StepType) {
	l.bySlot[slot] = append(l.bySlot[slot], p)
	if _, ok := l.stepTypeOf[p.ID]; !ok {
		l.stepTypeOf[p.ID] = st
	}
	for _, class := range ingredients.RedundancyClasses(p.Ingredients) {
		if _, ok := l.classOwner[class]; !ok {
			l.classOwner[class] = p.ID
		}
	}
}

// crossFamilyUse reports whether the product is already committed today
// under a different base family. Repeats within the same family (the same
// cleanser morning and evening) are legal.
func (l *dayLedger) crossFamilyUse(productID string, st domain.StepType) bool {
	prev, ok := l.stepTypeOf[productID]
	return ok && prev != st
}

// duplicateClass returns the redundancy class and owning product id when the
// candidate overlaps a class already registered today by another product.
func (l *dayLedger) duplicateClass(p domain.CatalogProduct) (ingredients.RedundancyClass, string, bool) {
	for _, class := range ingredients.RedundancyClasses(p.Ingredients) {
		if owner, ok := l.classOwner[class]; ok && owner != p.ID {
			return class, owner, true
		}
	}
	return "", "", false
}
