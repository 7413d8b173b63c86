package commands

import (
	"context"
	"errors"
	"sort"

	"factoryops/internal/core/domain/model/order"
	"factoryops/internal/pkg/errs"
)

// ErrEmployeeAlreadyBusy indicates the employee already holds an accepted
// order and cannot take another until it is finished.
var ErrEmployeeAlreadyBusy = errors.New("employee already has an order in progress")

// AcceptOrderCommandHandler handles the business logic for order acceptance.
// In a single transaction it assigns the employee, checks availability of
// every required material and decrements stock. Any failure rolls the whole
// transaction back, so stock is never partially reserved.
//
// Rows are locked in a fixed order: the employee, then the order, then the
// materials in ascending ID order. The fixed order keeps concurrent
// acceptances that share rows from deadlocking each other, and the employee
// lock serializes the one-accepted-order-per-employee check. Transactions
// aborted by the storage layer with a serialization failure are retried a
// bounded number of times.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory)
//	cmd, _ := NewAcceptOrderCommand(orderID, employeeID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var stockErr *material.InsufficientStockError
//	    if errors.As(err, &stockErr) {
//	        // report which material ran short
//	    }
//	    return err
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
// Requires an OrderUoWFactory for transactional persistence.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order acceptance command.
// Returns ErrEmployeeAlreadyBusy when the employee holds another accepted
// order, order.ErrAlreadyAssigned or order.ErrAlreadyCompleted on invalid
// lifecycle state, and material.InsufficientStockError when any requirement
// cannot be covered. On any error no stock is consumed.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h *AcceptOrderCommandHandler) handle(ctx context.Context, cmd AcceptOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The employee row lock serializes concurrent acceptances by the same
	// employee, so the one-accepted-order check below cannot race.
	if _, err := uow.EmployeeRepository().GetForUpdate(ctx, cmd.EmployeeID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	acceptedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	_, err = orderRepo.GetAcceptedByEmployee(ctx, cmd.EmployeeID())
	if err == nil {
		return ErrEmployeeAlreadyBusy
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = acceptedOrder.Accept(cmd.EmployeeID()); err != nil {
		return err
	}

	if err = h.reserveStock(ctx, uow, acceptedOrder); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, acceptedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// reserveStock locks and decrements every required material. Rows are locked
// in ascending material ID order.
func (h *AcceptOrderCommandHandler) reserveStock(ctx context.Context, uow OrderUoW, acceptedOrder *order.Order) error {
	requirements := acceptedOrder.Requirements()
	sort.Slice(requirements, func(i, j int) bool {
		return requirements[i].MaterialID().String() < requirements[j].MaterialID().String()
	})

	materialRepo := uow.MaterialRepository()
	for _, req := range requirements {
		lockedMaterial, err := materialRepo.GetForUpdate(ctx, req.MaterialID())
		if err != nil {
			return err
		}

		if err = lockedMaterial.Reserve(req.TotalFor(acceptedOrder.Quantity())); err != nil {
			return err
		}

		if err = materialRepo.Update(ctx, lockedMaterial); err != nil {
			return err
		}
	}

	return nil
}
