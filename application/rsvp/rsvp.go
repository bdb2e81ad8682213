package rsvp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mduval/wedding-rsvp/cmd/config"
	"github.com/mduval/wedding-rsvp/constant"
	"github.com/mduval/wedding-rsvp/model"
	"github.com/mduval/wedding-rsvp/repository/lock"
	"github.com/mduval/wedding-rsvp/repository/record"
	"github.com/mduval/wedding-rsvp/thirdparty/rabbitmq"
	"github.com/mduval/wedding-rsvp/utils/errors"
	"github.com/mduval/wedding-rsvp/utils/identity"
	"github.com/mduval/wedding-rsvp/utils/logger"
	"go.uber.org/zap"
)

type RsvpApp interface {
	Submit(ctx context.Context, req *model.SubmitRequest) (*model.SubmitResponse, error)
	List(ctx context.Context, attending string) (*model.ListResponse, error)
}

// EventPublisher is satisfied by the rabbitmq publisher; nil means no
// broker is configured and events are skipped.
type EventPublisher interface {
	PublishRSVPEvent(msg rabbitmq.RSVPEventMessage) error
}

type rsvpAppImpl struct {
	config     *config.Config
	recordRepo record.Repository
	locker     lock.Locker
	publisher  EventPublisher
}

func NewRsvpApp(config *config.Config, recordRepo record.Repository, locker lock.Locker, publisher EventPublisher) RsvpApp {
	return &rsvpAppImpl{
		config:     config,
		recordRepo: recordRepo,
		locker:     locker,
		publisher:  publisher,
	}
}

// Submit runs the full pipeline: invite-code membership, server-side
// re-derivation of the family fields, identity normalization, then an
// upsert keyed on normalized email-or-phone. The locker serializes the
// find-then-write section so two concurrent submissions for the same new
// identity cannot both insert.
func (s *rsvpAppImpl) Submit(ctx context.Context, req *model.SubmitRequest) (*model.SubmitResponse, error) {
	if !s.config.HasInviteCode(req.Code) {
		return nil, errors.SetCustomError(constant.ErrInvalidCode)
	}

	attending := req.Attending != nil && *req.Attending

	// The client-supplied count is discarded, the brackets are the source
	// of truth. A non-attending record carries no family data at all.
	ages := req.Children.AgeRanges
	adultPartner := req.AdultPartner
	if !attending {
		ages = model.AgeRanges{}
		adultPartner = false
	}
	children := model.Children{Count: ages.Sum(), AgeRanges: ages}

	email := identity.NormalizeEmail(req.Email)
	phone := identity.NormalizePhone(req.Phone)
	if email == "" && phone == "" {
		return nil, errors.SetCustomError(constant.ErrMissingIdentity)
	}

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		logger.Error("[Submit] err locker.Acquire", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer release()

	existing, err := s.recordRepo.FindMatch(ctx, email, phone)
	if err != nil {
		logger.Error("[Submit] err recordRepo.FindMatch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}

	now := time.Now().UTC().Format(constant.TimeLayout)
	rec := model.Record{
		Code:         req.Code,
		Name:         req.Name,
		Email:        email,
		Phone:        phone,
		Attending:    attending,
		AdultPartner: adultPartner,
		Children:     children,
		Message:      req.Message,
		UpdatedAt:    now,
	}

	event := rabbitmq.EventCreated
	if existing != nil {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		event = rabbitmq.EventUpdated
	} else {
		rec.ID = uuid.NewString()
		rec.CreatedAt = now
	}

	if err := s.recordRepo.Upsert(ctx, rec); err != nil {
		logger.Error("[Submit] err recordRepo.Upsert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}

	// Event delivery is best effort, a broker outage never fails a guest.
	if s.publisher != nil {
		err := s.publisher.PublishRSVPEvent(rabbitmq.RSVPEventMessage{
			Event:     event,
			RecordID:  rec.ID,
			Name:      rec.Name,
			Attending: rec.Attending,
			UpdatedAt: rec.UpdatedAt,
		})
		if err != nil {
			logger.Warn("[Submit] err publisher.PublishRSVPEvent", zap.String("error", err.Error()))
		}
	}

	return &model.SubmitResponse{OK: true, Message: "rsvp saved"}, nil
}

func (s *rsvpAppImpl) List(ctx context.Context, attending string) (*model.ListResponse, error) {
	all, err := s.recordRepo.ReadAll(ctx)
	if err != nil {
		logger.Error("[List] err recordRepo.ReadAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}

	items := all
	switch attending {
	case "yes":
		items = filterAttending(all, true)
	case "no":
		items = filterAttending(all, false)
	}
	if items == nil {
		items = []model.Record{}
	}

	return &model.ListResponse{Count: len(items), Items: items}, nil
}

func filterAttending(all []model.Record, want bool) []model.Record {
	out := make([]model.Record, 0, len(all))
	for _, rec := range all {
		if rec.Attending == want {
			out = append(out, rec)
		}
	}
	return out
}
