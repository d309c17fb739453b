package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"nautto-be/internal/dto"
	"nautto-be/internal/pkg/apperror"
	"nautto-be/internal/repository/contract"
	"nautto-be/internal/repository/specification"
	"nautto-be/internal/repository/unitofwork"
	"nautto-be/internal/schema"
)

// decodePayload validates body against the schema of kind and decodes it
// into dst.
func decodePayload(kind schema.Kind, body dto.Body, dst any) error {
	raw, err := body.Raw()
	if err != nil {
		return err
	}

	var document any
	if err := json.Unmarshal(raw, &document); err != nil {
		return apperror.UnsupportedMediaType("Requests must be JSON")
	}
	// Every payload is a JSON object; null, arrays and scalars are not documents.
	if _, ok := document.(map[string]any); !ok {
		return apperror.UnsupportedMediaType("Requests must be JSON")
	}
	if err := schema.Validate(kind, document); err != nil {
		return apperror.InvalidDocument(err.Error())
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperror.InvalidDocument(err.Error())
	}
	return nil
}

// requestedId parses the optional "id" of a payload. Zero means the store
// assigns one.
func requestedId(raw *string) (uint, error) {
	if raw == nil {
		return 0, nil
	}
	id, err := strconv.ParseUint(*raw, 10, 63)
	if err != nil || id == 0 {
		return 0, apperror.InvalidDocument(fmt.Sprintf("'%s' is not a valid id", *raw))
	}
	return uint(id), nil
}

// memberId resolves an element of "items". Ids that cannot name a row are
// reported the same way as ids that name no row.
func memberId(kind schema.Kind, ref dto.MemberRef) (uint, error) {
	id, err := strconv.ParseUint(string(ref), 10, 63)
	if err != nil || id == 0 {
		return 0, notFound(kind, string(ref))
	}
	return uint(id), nil
}

func notFound(kind schema.Kind, id any) error {
	return apperror.NotFound("No %s was found with the id %v", kind, id)
}

func alreadyExists(kind schema.Kind, id uint) error {
	return apperror.AlreadyExists("%s with id '%d' already exists.", kind.Title(), id)
}

// storeError maps repository sentinels onto the API error taxonomy.
func storeError(kind schema.Kind, id uint, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, contract.ErrConflict):
		return alreadyExists(kind, id)
	case errors.Is(err, contract.ErrNoRows):
		return notFound(kind, id)
	default:
		return fmt.Errorf("%s %d: %w", kind, id, err)
	}
}

// ensureUser fails with a not found error when the owner does not exist.
func ensureUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uint) error {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return notFound(schema.KindUser, userId)
	}
	return nil
}

// ownerSpecs narrows a listing to one owner when ownerId is set.
func ownerSpecs(ownerId *uint) []specification.Specification {
	specs := []specification.Specification{}
	if ownerId != nil {
		specs = append(specs, specification.UserOwnedBy{UserID: *ownerId})
	}
	return append(specs, specification.OrderByID)
}
