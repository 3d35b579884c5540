package v1

import (
	ck_uuid "github.com/chartkeeper/backend/internal/uuid"
)

// URIID binds the :id URI parameter.
type URIID struct {
	ID ck_uuid.UUID `uri:"id" binding:"required"`
}
