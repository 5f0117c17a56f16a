package contracts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"funeraria-backend/internal/application/commission"
	"funeraria-backend/internal/application/inventory"
	"funeraria-backend/internal/application/numbering"
	"funeraria-backend/internal/application/pricing"
	"funeraria-backend/internal/application/schedule"
	"funeraria-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is the transaction coordinator. Every mutating call runs as one
// gorm transaction: client upsert, deceased, derived money fields, number
// allocation, line items, stock deduction and payment schedule commit
// together or not at all.
type Service struct {
	DB      *gorm.DB
	Numbers *numbering.Allocator

	// Now is overridable for deterministic schedules in tests.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Finalize turns a validated quote into a contract. Validation failures
// surface as *ValidationError before any write happens.
func (s *Service) Finalize(ctx context.Context, actor ActorContext, req *Request) (*domain.Contract, error) {
	totals, comm, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	var contractID uuid.UUID
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := upsertClient(tx, req.Client)
		if err != nil {
			return err
		}

		contract := domain.Contract{
			Type:                 req.Type,
			Status:               domain.StatusContract,
			IsHoliday:            req.IsHoliday,
			IsNightShift:         req.IsNightShift,
			Subtotal:             totals.Subtotal,
			DiscountPercentage:   req.DiscountPercentage,
			DiscountAmount:       totals.DiscountAmount,
			Total:                totals.Total,
			PaymentMethod:        req.PaymentMethod,
			Installments:         req.Installments,
			DownPayment:          req.DownPayment,
			CommissionPercentage: comm.Rate,
			CommissionAmount:     comm.Amount,
			ClientID:             client.ClientID,
			AgreementID:          req.AgreementID,
			ChurchID:             req.ChurchID,
			CemeteryID:           req.CemeteryID,
			WakeRoomID:           req.WakeRoomID,
			DriverID:             req.DriverID,
			AssistantID:          req.AssistantID,
			VehicleID:            req.VehicleID,
			CreatedBy:            actor.UserID,
			BranchID:             actor.BranchID,
		}

		if req.Type == domain.TypeImmediateNeed {
			deceased := newDeceased(req.Deceased)
			if err := tx.Create(&deceased).Error; err != nil {
				return err
			}
			contract.DeceasedID = &deceased.DeceasedID
		}

		number, err := s.Numbers.Next(tx)
		if err != nil {
			return err
		}
		contract.Number = number

		if err := tx.Create(&contract).Error; err != nil {
			return err
		}
		contractID = contract.ContractID

		if err := attachLines(tx, contract.ContractID, req); err != nil {
			return err
		}

		if req.Type == domain.TypeImmediateNeed {
			if err := inventory.Deduct(tx, deductions(req.Products)); err != nil {
				return err
			}
		}

		if err := s.rebuildPayments(tx, &contract); err != nil {
			return err
		}

		return s.recordEvent(tx, &contract, domain.EventContractCreated, actor)
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Get(ctx, contractID)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("number", out.Number).
		Int64("total", out.Total).
		Str("user_id", actor.UserID.String()).
		Msg("Contract finalized")
	return out, nil
}

// Update re-derives every computed field and replaces line items and the
// payment schedule wholesale. The number is immutable and previously
// deducted stock stands: plain edits never re-adjust inventory.
func (s *Service) Update(ctx context.Context, actor ActorContext, contractID uuid.UUID, req *Request) (*domain.Contract, error) {
	existing, err := s.Get(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if req.Type != existing.Type {
		verr := newValidation()
		verr.add("type", "cannot change contract type on edit; use conversion")
		return nil, verr
	}

	totals, comm, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := upsertClient(tx, req.Client)
		if err != nil {
			return err
		}

		if req.Type == domain.TypeImmediateNeed {
			if existing.DeceasedID != nil {
				if err := tx.Model(&domain.Deceased{}).
					Where("deceased_id = ?", *existing.DeceasedID).
					Updates(map[string]interface{}{
						"full_name":      req.Deceased.FullName,
						"death_date":     req.Deceased.DeathDate,
						"death_place":    req.Deceased.DeathPlace,
						"gender":         req.Deceased.Gender,
						"age":            req.Deceased.Age,
						"marital_status": req.Deceased.MaritalStatus,
					}).Error; err != nil {
					return err
				}
			} else {
				deceased := newDeceased(req.Deceased)
				if err := tx.Create(&deceased).Error; err != nil {
					return err
				}
				existing.DeceasedID = &deceased.DeceasedID
			}
		}

		existing.ClientID = client.ClientID
		existing.IsHoliday = req.IsHoliday
		existing.IsNightShift = req.IsNightShift
		existing.Subtotal = totals.Subtotal
		existing.DiscountPercentage = req.DiscountPercentage
		existing.DiscountAmount = totals.DiscountAmount
		existing.Total = totals.Total
		existing.PaymentMethod = req.PaymentMethod
		existing.Installments = req.Installments
		existing.DownPayment = req.DownPayment
		existing.CommissionPercentage = comm.Rate
		existing.CommissionAmount = comm.Amount
		existing.AgreementID = req.AgreementID
		existing.ChurchID = req.ChurchID
		existing.CemeteryID = req.CemeteryID
		existing.WakeRoomID = req.WakeRoomID
		existing.DriverID = req.DriverID
		existing.AssistantID = req.AssistantID
		existing.VehicleID = req.VehicleID
		existing.ServiceLines = nil
		existing.ProductLines = nil
		existing.Payments = nil
		existing.Client = nil
		existing.Deceased = nil

		if err := tx.Save(existing).Error; err != nil {
			return err
		}

		if err := tx.Where("contract_id = ?", contractID).Delete(&domain.ServiceLineItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contract_id = ?", contractID).Delete(&domain.ProductLineItem{}).Error; err != nil {
			return err
		}
		if err := attachLines(tx, contractID, req); err != nil {
			return err
		}

		if err := s.rebuildPayments(tx, existing); err != nil {
			return err
		}

		return s.recordEvent(tx, existing, domain.EventContractUpdated, actor)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, contractID)
}

// Convert turns a future-need contract into immediate-need: the deceased is
// created and stock is deducted retroactively for every product line already
// attached.
func (s *Service) Convert(ctx context.Context, actor ActorContext, contractID uuid.UUID, deceased *DeceasedInput) (*domain.Contract, error) {
	existing, err := s.Get(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if existing.Type == domain.TypeImmediateNeed {
		return nil, ErrAlreadyImmediate
	}

	verr := newValidation()
	switch {
	case deceased == nil:
		verr.add("deceased", "required for conversion")
	case deceased.FullName == "":
		verr.add("deceased.full_name", "required")
	case deceased.DeathDate.IsZero():
		verr.add("deceased.death_date", "required")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := newDeceased(deceased)
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Contract{}).
			Where("contract_id = ?", contractID).
			Updates(map[string]interface{}{
				"type":        domain.TypeImmediateNeed,
				"deceased_id": rec.DeceasedID,
			}).Error; err != nil {
			return err
		}

		items := make([]inventory.Deduction, 0, len(existing.ProductLines))
		for _, l := range existing.ProductLines {
			items = append(items, inventory.Deduction{ProductID: l.ProductID, Quantity: l.Quantity})
		}
		if err := inventory.Deduct(tx, items); err != nil {
			return err
		}

		return s.recordEvent(tx, existing, domain.EventContractConverted, actor)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, contractID)
}

// ChangeStatus transitions a contract to cancelled or completed. Other
// targets are not reachable through the engine.
func (s *Service) ChangeStatus(ctx context.Context, actor ActorContext, contractID uuid.UUID, status domain.ContractStatus) (*domain.Contract, error) {
	if status != domain.StatusCancelled && status != domain.StatusCompleted {
		return nil, ErrInvalidTransition
	}
	existing, err := s.Get(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusCancelled || existing.Status == domain.StatusCompleted {
		return nil, ErrInvalidTransition
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Contract{}).
			Where("contract_id = ?", contractID).
			Update("status", status).Error; err != nil {
			return err
		}
		existing.Status = status
		return s.recordEvent(tx, existing, domain.EventContractStatus, actor)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, contractID)
}

// SoftDelete hides the contract without touching its status or reclaiming
// its number.
func (s *Service) SoftDelete(ctx context.Context, actor ActorContext, contractID uuid.UUID) error {
	existing, err := s.Get(ctx, contractID)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Contract{}, "contract_id = ?", contractID).Error; err != nil {
			return err
		}
		return s.recordEvent(tx, existing, domain.EventContractDeleted, actor)
	})
}

// Get loads the full aggregate for rendering collaborators.
func (s *Service) Get(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error) {
	var contract domain.Contract
	err := s.DB.WithContext(ctx).
		Preload("Client").
		Preload("Deceased").
		Preload("ServiceLines").
		Preload("ProductLines").
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("number") }).
		First(&contract, "contract_id = ?", contractID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// validate runs shape validation, catalog and agreement checks, and derives
// the money block. Read-only; the transaction has not started yet.
func (s *Service) validate(ctx context.Context, req *Request) (pricing.Totals, commission.Result, error) {
	verr := req.validateShape()
	if err := verr.orNil(); err != nil {
		return pricing.Totals{}, commission.Result{}, err
	}

	db := s.DB.WithContext(ctx)

	if ids := selectionIDs(req.Services); len(ids) > 0 {
		var count int64
		if err := db.Model(&domain.ServiceItem{}).Where("service_id IN ?", ids).Count(&count).Error; err != nil {
			return pricing.Totals{}, commission.Result{}, err
		}
		if count != int64(len(ids)) {
			verr.add("services", "unknown service id")
		}
	}
	if ids := selectionIDs(req.Products); len(ids) > 0 {
		var count int64
		if err := db.Model(&domain.Product{}).Where("product_id IN ?", ids).Count(&count).Error; err != nil {
			return pricing.Totals{}, commission.Result{}, err
		}
		if count != int64(len(ids)) {
			verr.add("products", "unknown product id")
		}
	}

	if req.AgreementID != nil {
		var agreement domain.Agreement
		err := db.First(&agreement, "agreement_id = ?", *req.AgreementID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			verr.add("agreement_id", "agreement does not exist")
		case err != nil:
			return pricing.Totals{}, commission.Result{}, err
		case !agreement.IsActiveOn(s.now()):
			verr.add("agreement_id", "agreement is not currently active")
		}
	}

	totals := pricing.Calculate(pricingLines(req.Services), pricingLines(req.Products), req.DiscountPercentage)
	if req.PaymentMethod == domain.MethodCredit && req.DownPayment > totals.Total {
		verr.add("down_payment", "must not exceed total")
	}

	if err := verr.orNil(); err != nil {
		return pricing.Totals{}, commission.Result{}, err
	}

	comm := commission.Calculate(totals.Total, req.IsNightShift, req.IsHoliday)
	return totals, comm, nil
}

// rebuildPayments destroys and regenerates the schedule per current payment
// terms. Cash contracts end with zero payment rows.
func (s *Service) rebuildPayments(tx *gorm.DB, contract *domain.Contract) error {
	if err := tx.Where("contract_id = ?", contract.ContractID).Delete(&domain.Payment{}).Error; err != nil {
		return err
	}
	if contract.PaymentMethod != domain.MethodCredit {
		return nil
	}

	installments, err := schedule.Build(contract.Total, contract.DownPayment, contract.Installments, s.now())
	if err != nil {
		return err
	}
	rows := make([]domain.Payment, len(installments))
	for i, inst := range installments {
		rows[i] = domain.Payment{
			ContractID: contract.ContractID,
			Number:     inst.Number,
			Amount:     inst.Amount,
			DueDate:    inst.DueDate,
			Status:     domain.PaymentStatusPending,
			Method:     string(domain.MethodCredit),
		}
	}
	return tx.Create(&rows).Error
}

func (s *Service) recordEvent(tx *gorm.DB, contract *domain.Contract, eventType string, actor ActorContext) error {
	payload, _ := json.Marshal(map[string]interface{}{
		"number":    contract.Number,
		"type":      contract.Type,
		"status":    contract.Status,
		"total":     contract.Total,
		"branch_id": actor.BranchID,
	})
	return tx.Create(&domain.ContractEvent{
		ContractID: contract.ContractID,
		EventType:  eventType,
		EventData:  datatypes.JSON(payload),
		ActorID:    actor.UserID,
	}).Error
}

func upsertClient(tx *gorm.DB, in ClientInput) (*domain.Client, error) {
	var client domain.Client
	err := tx.Where("tax_number = ?", in.TaxNumber).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		client = domain.Client{
			TaxNumber:    in.TaxNumber,
			FullName:     in.FullName,
			Phone:        in.Phone,
			Email:        in.Email,
			Address:      in.Address,
			Occupation:   in.Occupation,
			Relationship: in.Relationship,
		}
		if err := tx.Create(&client).Error; err != nil {
			return nil, err
		}
		return &client, nil
	}
	if err != nil {
		return nil, err
	}

	client.FullName = in.FullName
	client.Phone = in.Phone
	client.Email = in.Email
	client.Address = in.Address
	client.Occupation = in.Occupation
	client.Relationship = in.Relationship
	if err := tx.Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func newDeceased(in *DeceasedInput) domain.Deceased {
	return domain.Deceased{
		FullName:      in.FullName,
		DeathDate:     in.DeathDate,
		DeathPlace:    in.DeathPlace,
		Gender:        in.Gender,
		Age:           in.Age,
		MaritalStatus: in.MaritalStatus,
	}
}

func attachLines(tx *gorm.DB, contractID uuid.UUID, req *Request) error {
	if len(req.Services) > 0 {
		rows := make([]domain.ServiceLineItem, len(req.Services))
		for i, l := range req.Services {
			rows[i] = domain.ServiceLineItem{
				ContractID: contractID,
				ServiceID:  l.ID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Subtotal:   pricing.LineSubtotal(pricing.Line{Quantity: l.Quantity, UnitPrice: l.UnitPrice}),
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(req.Products) > 0 {
		rows := make([]domain.ProductLineItem, len(req.Products))
		for i, l := range req.Products {
			rows[i] = domain.ProductLineItem{
				ContractID: contractID,
				ProductID:  l.ID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Subtotal:   pricing.LineSubtotal(pricing.Line{Quantity: l.Quantity, UnitPrice: l.UnitPrice}),
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func pricingLines(sel []LineSelection) []pricing.Line {
	out := make([]pricing.Line, len(sel))
	for i, l := range sel {
		out[i] = pricing.Line{Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	return out
}

func deductions(sel []LineSelection) []inventory.Deduction {
	out := make([]inventory.Deduction, len(sel))
	for i, l := range sel {
		out[i] = inventory.Deduction{ProductID: l.ID, Quantity: l.Quantity}
	}
	return out
}

func selectionIDs(sel []LineSelection) []uuid.UUID {
	seen := map[uuid.UUID]bool{}
	out := make([]uuid.UUID, 0, len(sel))
	for _, l := range sel {
		if !seen[l.ID] {
			seen[l.ID] = true
			out = append(out, l.ID)
		}
	}
	return out
}
