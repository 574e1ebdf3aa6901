// Package models holds the persisted shape of every entity. Each struct is the
// row as read back from storage; the allow-listed insert shapes live in the
// schema package.
package models

// All lists the entities in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Restaurant{},
		&MenuItem{},
		&Table{},
		&Order{},
		&Session{},
	}
}
