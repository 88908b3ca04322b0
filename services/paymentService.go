package services

import (
	"context"

	"github.com/clubsphere/backend/entities"
)

type PaymentService struct {
	paymentRepository PaymentRepository
}

func NewPaymentService(paymentRepository PaymentRepository) *PaymentService {
	return &PaymentService{
		paymentRepository: paymentRepository,
	}
}

func (s *PaymentService) FindAll(ctx context.Context) ([]*entities.Payment, error) {
	return s.paymentRepository.FindAll(ctx)
}

func (s *PaymentService) FindManyByEmail(ctx context.Context, memberEmail string) ([]*entities.Payment, error) {
	return s.paymentRepository.FindManyByEmail(ctx, memberEmail)
}
