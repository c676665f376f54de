package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// NewOrderNumber mints a customer-facing order number.
func NewOrderNumber() string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "CR-" + frag[:10]
}

// Create persists a new order. The caller supplies the priced snapshot; the
// service fills in number, status, and timestamps when missing.
func (s *Service) Create(ord Order) (Order, error) {
	if ord.SessionID == "" {
		return Order{}, errors.New("missing session")
	}
	if len(ord.Items) == 0 {
		return Order{}, errors.New("empty order")
	}
	if ord.OrderNumber == "" {
		ord.OrderNumber = NewOrderNumber()
	}
	if ord.Status == "" {
		ord.Status = StatusConfirmed
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if ord.CreatedAt == "" {
		ord.CreatedAt = now
	}
	ord.UpdatedAt = now
	return s.repo.Create(ord)
}

func (s *Service) ListBySession(sessionID string) ([]Order, error) {
	if sessionID == "" {
		return []Order{}, nil
	}
	return s.repo.ListBySession(sessionID)
}

func (s *Service) GetByNumber(orderNumber string) (Order, error) {
	if orderNumber == "" {
		return Order{}, ErrNotFound
	}
	return s.repo.GetByNumber(orderNumber)
}
