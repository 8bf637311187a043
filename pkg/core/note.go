package core

import "time"

// Note is the central entity of the domain.
// It represents a titled text record with an archive status and optional
// category associations. It is agnostic to where it lives (remote API,
// local JSON mirror).
type Note struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Archived    bool               `json:"isArchived"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Categories  []CategoryRelation `json:"categories,omitempty"`
}

// Category is a named, colored label attachable to multiple notes.
// Name uniqueness is enforced by the backing store, not here.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryRelation is the association record the wire format uses to link a
// note to a category. It carries no attributes of its own.
type CategoryRelation struct {
	Category Category `json:"category"`
}

// CreateNoteInput carries the fields required to create a note.
type CreateNoteInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateNoteInput carries a partial update. Nil fields are left untouched.
type UpdateNoteInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// HasCategory reports whether the note carries the given category.
func (n *Note) HasCategory(categoryID string) bool {
	for _, rel := range n.Categories {
		if rel.Category.ID == categoryID {
			return true
		}
	}
	return false
}

// CategoryIDs returns the IDs of all categories attached to the note,
// preserving wire order.
func (n *Note) CategoryIDs() []string {
	ids := make([]string, 0, len(n.Categories))
	for _, rel := range n.Categories {
		ids = append(ids, rel.Category.ID)
	}
	return ids
}
