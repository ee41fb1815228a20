package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	dErrors "ims/pkg/domain-errors"
)

// UserID identifies a login subject. It is the opaque subject id carried in
// credentials and never doubles as a Customer or Agent row id.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// NewUserID returns a random user id.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseUserID validates a UUID string at a trust boundary.
func ParseUserID(s string) (UserID, error) {
	if strings.TrimSpace(s) == "" {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "user id is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid user id")
	}
	if parsed == uuid.Nil {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "user id cannot be nil")
	}
	return UserID(parsed), nil
}

// Row ids. Each storage table gets its own type so a CustomerID can never be
// passed where an AgentID is expected.
type (
	CustomerID        int64
	AgentID           int64
	AvailablePolicyID int64
	PolicyRequestID   int64
	PolicyID          int64
	ClaimID           int64
	NotificationID    int64
)

type rowID interface {
	~int64
}

// Valid reports whether a row id can refer to a stored record.
func Valid[T rowID](id T) bool { return id > 0 }

func parseRowID[T rowID](s, name string) (T, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+name)
	}
	if v <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, name+" must be positive")
	}
	return T(v), nil
}

func ParseCustomerID(s string) (CustomerID, error) {
	return parseRowID[CustomerID](s, "customer id")
}

func ParseAgentID(s string) (AgentID, error) {
	return parseRowID[AgentID](s, "agent id")
}

func ParseAvailablePolicyID(s string) (AvailablePolicyID, error) {
	return parseRowID[AvailablePolicyID](s, "available policy id")
}

func ParsePolicyRequestID(s string) (PolicyRequestID, error) {
	return parseRowID[PolicyRequestID](s, "policy request id")
}

func ParsePolicyID(s string) (PolicyID, error) {
	return parseRowID[PolicyID](s, "policy id")
}

// ParseClaimID accepts any integer; adjudication rejects non-positive ids
// itself so callers see a validation failure rather than a parse error.
func ParseClaimID(s string) (ClaimID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid claim id")
	}
	return ClaimID(v), nil
}
