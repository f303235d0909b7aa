package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gigboard/internal/entities"
	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
)

type Lifecycle struct {
	gateway      OrderGateway
	publisher    EventPublisher
	maxPhotoSize int64
}

func New(gateway OrderGateway, publisher EventPublisher, maxPhotoSize int64) *Lifecycle {
	return &Lifecycle{
		gateway:      gateway,
		publisher:    publisher,
		maxPhotoSize: maxPhotoSize,
	}
}

// command описывает одно действие над существующим заказом.
type command struct {
	action  entities.ActionType
	orderID int64
	// проверка аргументов до обращения к сервису заказов
	validate func() error
	dispatch func(ctx context.Context) (*entities.ActionResult, error)
}

func (s *Lifecycle) Claim(ctx context.Context, session entities.Session, orderID int64) (*entities.ActionResult, error) {
	return s.run(ctx, session, command{
		action:  entities.ActionClaim,
		orderID: orderID,
		dispatch: func(ctx context.Context) (*entities.ActionResult, error) {
			return s.gateway.ClaimOrder(ctx, session, orderID)
		},
	})
}

func (s *Lifecycle) Complete(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	finalPrice float64,
) (*entities.ActionResult, error) {
	return s.run(ctx, session, command{
		action:  entities.ActionComplete,
		orderID: orderID,
		validate: func() error {
			if !isPositivePrice(finalPrice) {
				return ErrInvalidFinalPrice
			}
			return nil
		},
		dispatch: func(ctx context.Context) (*entities.ActionResult, error) {
			return s.gateway.CompleteOrder(ctx, session, orderID, finalPrice)
		},
	})
}

func (s *Lifecycle) AdjustPrice(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	price float64,
) (*entities.ActionResult, error) {
	return s.run(ctx, session, command{
		action:  entities.ActionAdjustPrice,
		orderID: orderID,
		validate: func() error {
			if !isPositivePrice(price) {
				return ErrInvalidPrice
			}
			return nil
		},
		dispatch: func(ctx context.Context) (*entities.ActionResult, error) {
			return s.gateway.AdjustPrice(ctx, session, orderID, price)
		},
	})
}

// Pay: частичная оплата возможна только у принятого заказа, полная - только у выполненного.
func (s *Lifecycle) Pay(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	kind entities.PaymentKind,
) (*entities.ActionResult, error) {
	action, ok := paymentAction(kind)
	if !ok {
		return nil, fmt.Errorf("pay order %d with %q: %w", orderID, kind, ErrInvalidPaymentKind)
	}

	return s.run(ctx, session, command{
		action:  action,
		orderID: orderID,
		dispatch: func(ctx context.Context) (*entities.ActionResult, error) {
			return s.gateway.PayOrder(ctx, session, orderID, kind)
		},
	})
}

func (s *Lifecycle) Cancel(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	confirmed bool,
) (*entities.ActionResult, error) {
	return s.run(ctx, session, command{
		action:   entities.ActionCancel,
		orderID:  orderID,
		validate: requireConfirmation(confirmed),
		dispatch: func(ctx context.Context) (*entities.ActionResult, error) {
			return s.gateway.CancelOrder(ctx, session, orderID)
		},
	})
}

func (s *Lifecycle) Rate(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	rating entities.RatingSubmission,
) (*entities.ActionResult, error) {
	return s.run(ctx, session, command{
		action:  entities.ActionRate,
		orderID: orderID,
		validate: func() error {
			if !isValidScore(rating.Score) {
				return ErrInvalidScore
			}
			return nil
		},
		dispatch: func(ctx context.Context) (*entities.ActionResult, error) {
			return s.gateway.RateOrder(ctx, session, orderID, rating)
		},
	})
}

// Delete необратим, поэтому требует явного подтверждения.
func (s *Lifecycle) Delete(
	ctx context.Context,
	session entities.Session,
	orderID int64,
	confirmed bool,
) (*entities.ActionResult, error) {
	return s.run(ctx, session, command{
		action:   entities.ActionDelete,
		orderID:  orderID,
		validate: requireConfirmation(confirmed),
		dispatch: func(ctx context.Context) (*entities.ActionResult, error) {
			return s.gateway.DeleteOrder(ctx, session, orderID)
		},
	})
}

func (s *Lifecycle) Create(
	ctx context.Context,
	session entities.Session,
	draft entities.OrderDraft,
) (*entities.ActionResult, error) {
	result, err := s.create(ctx, session, draft)

	event := s.newEvent(entities.ActionCreate, session, 0, err)
	if err == nil {
		event.Message = result.Message
		if result.Order != nil {
			event.OrderID = result.Order.ID
			event.Status = pointer.To(result.Order.Status)
		}
	}
	s.publisher.Publish(ctx, event)

	return result, err
}

func (s *Lifecycle) create(
	ctx context.Context,
	session entities.Session,
	draft entities.OrderDraft,
) (*entities.ActionResult, error) {
	if session.Role != entities.RoleCustomer || session.UserID <= 0 {
		return nil, fmt.Errorf("create order by %s: %w", session.Role, ErrActionNotAllowed)
	}
	if err := validateDraft(draft, s.maxPhotoSize); err != nil {
		return nil, err
	}

	result, err := s.gateway.CreateOrder(ctx, session, draft)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return result, nil
}

// run выполняет действие ровно одной попыткой и публикует событие с его итогом.
func (s *Lifecycle) run(ctx context.Context, session entities.Session, cmd command) (*entities.ActionResult, error) {
	order, result, err := s.execute(ctx, session, cmd)

	event := s.newEvent(cmd.action, session, cmd.orderID, err)
	if order != nil {
		event.Status = pointer.To(order.Status)
	}
	if err == nil {
		event.Message = result.Message
		event.Status = resultStatus(cmd.action, order, result)
	}
	s.publisher.Publish(ctx, event)

	return result, err
}

func (s *Lifecycle) execute(
	ctx context.Context,
	session entities.Session,
	cmd command,
) (*entities.Order, *entities.ActionResult, error) {
	if !isValidOrderID(cmd.orderID) {
		return nil, nil, ErrInvalidOrderID
	}
	if cmd.validate != nil {
		if err := cmd.validate(); err != nil {
			return nil, nil, err
		}
	}

	order, err := s.loadOrder(ctx, session, cmd.orderID)
	if err != nil {
		if cmd.action == entities.ActionClaim && errors.Is(err, ErrOrderNotFound) {
			return nil, nil, fmt.Errorf("claim order %d: %w", cmd.orderID, ErrConflict)
		}
		return nil, nil, err
	}

	if err := Allowed(cmd.action, session, *order); err != nil {
		if cmd.action == entities.ActionClaim && order.Status != entities.OrderOpen {
			return order, nil, fmt.Errorf("claim %s order %d: %w", order.Status, order.ID, ErrConflict)
		}
		return order, nil, err
	}

	result, err := cmd.dispatch(ctx)
	if err != nil {
		if cmd.action == entities.ActionClaim {
			err = asConflict(err)
		}
		return order, nil, fmt.Errorf("%s order %d: %w", cmd.action, cmd.orderID, err)
	}
	if result == nil {
		result = &entities.ActionResult{}
	}
	if err := checkReportedStatus(cmd.action, *order, result); err != nil {
		return order, nil, err
	}

	return order, result, nil
}

// loadOrder берет свежую проекцию заказа из списка, доступного зрителю.
// Заказ, которого зритель не видит, считается несуществующим.
func (s *Lifecycle) loadOrder(ctx context.Context, session entities.Session, orderID int64) (*entities.Order, error) {
	orders, err := s.gateway.ListOrders(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}

	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("load order %d: %w", orderID, ErrOrderNotFound)
}

func (s *Lifecycle) newEvent(
	action entities.ActionType,
	session entities.Session,
	orderID int64,
	err error,
) entities.ActionEvent {
	event := entities.ActionEvent{
		ID:         uuid.New(),
		Action:     action,
		OrderID:    orderID,
		ActorID:    session.UserID,
		ActorRole:  session.Role,
		Outcome:    outcomeOf(err),
		OccurredAt: time.Now().UTC(),
	}
	if err != nil {
		event.Message = UserMessage(err)
	}
	return event
}

// отказ сервиса при захвате заказа означает, что его уже забрал кто-то другой
func asConflict(err error) error {
	var rejection *RejectionError
	if errors.As(err, &rejection) && errors.Is(rejection.Kind, ErrRejected) {
		return &RejectionError{
			StatusCode: rejection.StatusCode,
			Message:    rejection.Message,
			Kind:       ErrConflict,
		}
	}
	return err
}

func outcomeOf(err error) entities.OutcomeType {
	switch {
	case err == nil:
		return entities.OutcomeSucceeded
	case isValidationError(err):
		return entities.OutcomeBlocked
	case errors.Is(err, ErrTransport),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return entities.OutcomeFailed
	default:
		return entities.OutcomeRejected
	}
}

func resultStatus(
	action entities.ActionType,
	order *entities.Order,
	result *entities.ActionResult,
) *entities.OrderStatusType {
	target, ok := targetStatus[action]
	if ok && !target.IsValid() {
		return pointer.To(target)
	}
	if result.Order != nil {
		return pointer.To(result.Order.Status)
	}
	if ok {
		return pointer.To(target)
	}
	if order != nil {
		return pointer.To(order.Status)
	}
	return nil
}

func requireConfirmation(confirmed bool) func() error {
	return func() error {
		if !confirmed {
			return ErrConfirmationRequired
		}
		return nil
	}
}
