// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aolabi/docpipe/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOwnerID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// OriginalPath applies equality check predicate on the "original_path" field. It's identical to OriginalPathEQ.
func OriginalPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalPath, v))
}

// ProcessedPath applies equality check predicate on the "processed_path" field. It's identical to ProcessedPathEQ.
func ProcessedPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedPath, v))
}

// ProcessedText applies equality check predicate on the "processed_text" field. It's identical to ProcessedTextEQ.
func ProcessedText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedText, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOwnerID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// OriginalPathEQ applies the EQ predicate on the "original_path" field.
func OriginalPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalPath, v))
}

// OriginalPathNEQ applies the NEQ predicate on the "original_path" field.
func OriginalPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOriginalPath, v))
}

// OriginalPathIn applies the In predicate on the "original_path" field.
func OriginalPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOriginalPath, vs...))
}

// OriginalPathNotIn applies the NotIn predicate on the "original_path" field.
func OriginalPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOriginalPath, vs...))
}

// OriginalPathGT applies the GT predicate on the "original_path" field.
func OriginalPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOriginalPath, v))
}

// OriginalPathGTE applies the GTE predicate on the "original_path" field.
func OriginalPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOriginalPath, v))
}

// OriginalPathLT applies the LT predicate on the "original_path" field.
func OriginalPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOriginalPath, v))
}

// OriginalPathLTE applies the LTE predicate on the "original_path" field.
func OriginalPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOriginalPath, v))
}

// OriginalPathContains applies the Contains predicate on the "original_path" field.
func OriginalPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOriginalPath, v))
}

// OriginalPathHasPrefix applies the HasPrefix predicate on the "original_path" field.
func OriginalPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOriginalPath, v))
}

// OriginalPathHasSuffix applies the HasSuffix predicate on the "original_path" field.
func OriginalPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOriginalPath, v))
}

// OriginalPathEqualFold applies the EqualFold predicate on the "original_path" field.
func OriginalPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOriginalPath, v))
}

// OriginalPathContainsFold applies the ContainsFold predicate on the "original_path" field.
func OriginalPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOriginalPath, v))
}

// ProcessedPathEQ applies the EQ predicate on the "processed_path" field.
func ProcessedPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedPath, v))
}

// ProcessedPathNEQ applies the NEQ predicate on the "processed_path" field.
func ProcessedPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessedPath, v))
}

// ProcessedPathIn applies the In predicate on the "processed_path" field.
func ProcessedPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessedPath, vs...))
}

// ProcessedPathNotIn applies the NotIn predicate on the "processed_path" field.
func ProcessedPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessedPath, vs...))
}

// ProcessedPathGT applies the GT predicate on the "processed_path" field.
func ProcessedPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessedPath, v))
}

// ProcessedPathGTE applies the GTE predicate on the "processed_path" field.
func ProcessedPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessedPath, v))
}

// ProcessedPathLT applies the LT predicate on the "processed_path" field.
func ProcessedPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessedPath, v))
}

// ProcessedPathLTE applies the LTE predicate on the "processed_path" field.
func ProcessedPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessedPath, v))
}

// ProcessedPathContains applies the Contains predicate on the "processed_path" field.
func ProcessedPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldProcessedPath, v))
}

// ProcessedPathHasPrefix applies the HasPrefix predicate on the "processed_path" field.
func ProcessedPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldProcessedPath, v))
}

// ProcessedPathHasSuffix applies the HasSuffix predicate on the "processed_path" field.
func ProcessedPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldProcessedPath, v))
}

// ProcessedPathIsNil applies the IsNil predicate on the "processed_path" field.
func ProcessedPathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessedPath))
}

// ProcessedPathNotNil applies the NotNil predicate on the "processed_path" field.
func ProcessedPathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessedPath))
}

// ProcessedPathEqualFold applies the EqualFold predicate on the "processed_path" field.
func ProcessedPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldProcessedPath, v))
}

// ProcessedPathContainsFold applies the ContainsFold predicate on the "processed_path" field.
func ProcessedPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldProcessedPath, v))
}

// ProcessedTextEQ applies the EQ predicate on the "processed_text" field.
func ProcessedTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedText, v))
}

// ProcessedTextNEQ applies the NEQ predicate on the "processed_text" field.
func ProcessedTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessedText, v))
}

// ProcessedTextIn applies the In predicate on the "processed_text" field.
func ProcessedTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessedText, vs...))
}

// ProcessedTextNotIn applies the NotIn predicate on the "processed_text" field.
func ProcessedTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessedText, vs...))
}

// ProcessedTextGT applies the GT predicate on the "processed_text" field.
func ProcessedTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessedText, v))
}

// ProcessedTextGTE applies the GTE predicate on the "processed_text" field.
func ProcessedTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessedText, v))
}

// ProcessedTextLT applies the LT predicate on the "processed_text" field.
func ProcessedTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessedText, v))
}

// ProcessedTextLTE applies the LTE predicate on the "processed_text" field.
func ProcessedTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessedText, v))
}

// ProcessedTextContains applies the Contains predicate on the "processed_text" field.
func ProcessedTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldProcessedText, v))
}

// ProcessedTextHasPrefix applies the HasPrefix predicate on the "processed_text" field.
func ProcessedTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldProcessedText, v))
}

// ProcessedTextHasSuffix applies the HasSuffix predicate on the "processed_text" field.
func ProcessedTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldProcessedText, v))
}

// ProcessedTextIsNil applies the IsNil predicate on the "processed_text" field.
func ProcessedTextIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessedText))
}

// ProcessedTextNotNil applies the NotNil predicate on the "processed_text" field.
func ProcessedTextNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessedText))
}

// ProcessedTextEqualFold applies the EqualFold predicate on the "processed_text" field.
func ProcessedTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldProcessedText, v))
}

// ProcessedTextContainsFold applies the ContainsFold predicate on the "processed_text" field.
func ProcessedTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldProcessedText, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
