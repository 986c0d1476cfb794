package service

import (
	"context"
	"strconv"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/logger"
	"handmeup-backend/internal/repository"
	"handmeup-backend/internal/utils"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	clothingRepo repository.ClothingRepository
	paymentRepo  repository.PaymentRepository
	accountRepo  repository.AccountRepository
	emailSvc     EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	clothingRepo repository.ClothingRepository,
	paymentRepo repository.PaymentRepository,
	accountRepo repository.AccountRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		clothingRepo: clothingRepo,
		paymentRepo:  paymentRepo,
		accountRepo:  accountRepo,
		emailSvc:     emailSvc,
	}
}

func (s *rentalService) CreateRentalRequest(ctx context.Context, borrowerID, listingID, startDate, endDate, message string) (*domain.RentalRequest, error) {
	if borrowerID == "" || listingID == "" {
		return nil, ErrValidation
	}
	if _, err := utils.RentalDays(startDate, endDate); err != nil {
		return nil, ErrValidation
	}

	itemID, err := strconv.ParseInt(listingID, 10, 64)
	if err != nil {
		return nil, ErrValidation
	}
	item, err := s.clothingRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, ErrNotFound
	}
	if item.OwnerID == borrowerID {
		return nil, ErrValidation
	}

	rental := &domain.RentalRequest{
		BorrowerID: borrowerID,
		ListingID:  listingID,
		OwnerID:    item.OwnerID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     domain.RentalStatusPending,
		Message:    message,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, rental, item)

	return rental, nil
}

func (s *rentalService) ConfirmRental(ctx context.Context, ownerID string, rentalID int64) (*domain.RentalRequest, error) {
	return s.decide(ctx, ownerID, rentalID, domain.RentalStatusConfirmed)
}

func (s *rentalService) RejectRental(ctx context.Context, ownerID string, rentalID int64) (*domain.RentalRequest, error) {
	return s.decide(ctx, ownerID, rentalID, domain.RentalStatusRejected)
}

func (s *rentalService) decide(ctx context.Context, ownerID string, rentalID int64, decision domain.RentalStatus) (*domain.RentalRequest, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, ErrNotFound
	}
	if rental.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	if rental.Status != domain.RentalStatusPending {
		return nil, ErrValidation
	}

	if err := s.rentalRepo.UpdateStatus(ctx, rentalID, decision, rental.Message); err != nil {
		return nil, err
	}
	rental.Status = decision

	s.notifyBorrower(ctx, rental, decision == domain.RentalStatusConfirmed)

	return rental, nil
}

// CompletePayment records the payment row first and then moves the
// rental to completed. When the status update fails the payment row is
// left in place; there is no rollback across the two writes.
func (s *rentalService) CompletePayment(ctx context.Context, borrowerID string, rentalID int64, method string) (*domain.RentalRequest, *domain.Payment, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	if rental.BorrowerID != borrowerID {
		return nil, nil, ErrUnauthorized
	}
	if rental.Status != domain.RentalStatusConfirmed {
		return nil, nil, ErrValidation
	}

	itemID, err := strconv.ParseInt(rental.ListingID, 10, 64)
	if err != nil {
		return nil, nil, ErrValidation
	}
	item, err := s.clothingRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	total, err := utils.RentalTotalCents(rental.StartDate, rental.EndDate, item.PricePerDayCents)
	if err != nil {
		return nil, nil, ErrValidation
	}

	if method == "" {
		method = domain.PaymentMethodCreditCard
	}
	payment := &domain.Payment{
		RentalID:    rentalID,
		AmountCents: total,
		Method:      method,
		Status:      domain.PaymentStatusCompleted,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, err
	}

	if err := s.rentalRepo.UpdateStatus(ctx, rentalID, domain.RentalStatusCompleted, rental.Message); err != nil {
		logger.ErrorContext(ctx, "payment recorded but rental status update failed",
			"rental_id", rentalID, "payment_id", payment.ID, "error", err)
		return nil, nil, err
	}
	rental.Status = domain.RentalStatusCompleted

	if borrower, err := s.accountRepo.GetAccountByID(ctx, borrowerID); err == nil {
		_ = s.emailSvc.SendPaymentReceipt(ctx, borrower.Email, borrower.DisplayName, item.Title, total)
	}

	return rental, payment, nil
}

func (s *rentalService) ListPendingRequests(ctx context.Context, ownerID string) ([]domain.RentalRequest, error) {
	return s.rentalRepo.ListPendingByOwner(ctx, ownerID)
}

func (s *rentalService) ListMyRentals(ctx context.Context, userID string) ([]domain.RentalRequest, error) {
	return s.rentalRepo.ListByParticipant(ctx, userID)
}

func (s *rentalService) notifyOwner(ctx context.Context, rental *domain.RentalRequest, item *domain.ClothingItem) {
	owner, err := s.accountRepo.GetAccountByID(ctx, rental.OwnerID)
	if err != nil {
		return
	}
	borrowerName := "A borrower"
	if borrower, err := s.accountRepo.GetAccountByID(ctx, rental.BorrowerID); err == nil {
		borrowerName = borrower.DisplayName
	}
	if err := s.emailSvc.SendRentalRequestNotification(ctx, owner.Email, owner.DisplayName, borrowerName, item.Title); err != nil {
		logger.WarnContext(ctx, "rental request notification failed", "rental_id", rental.RentalID, "error", err)
	}
}

func (s *rentalService) notifyBorrower(ctx context.Context, rental *domain.RentalRequest, confirmed bool) {
	borrower, err := s.accountRepo.GetAccountByID(ctx, rental.BorrowerID)
	if err != nil {
		return
	}
	itemTitle := "the item"
	if itemID, err := strconv.ParseInt(rental.ListingID, 10, 64); err == nil {
		if item, err := s.clothingRepo.GetByID(ctx, itemID); err == nil {
			itemTitle = item.Title
		}
	}
	if err := s.emailSvc.SendRentalDecisionNotification(ctx, borrower.Email, borrower.DisplayName, itemTitle, confirmed); err != nil {
		logger.WarnContext(ctx, "rental decision notification failed", "rental_id", rental.RentalID, "error", err)
	}
}
