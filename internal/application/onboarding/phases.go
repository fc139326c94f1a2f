package onboarding

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/onboarding/backend/internal/domain/onboarding"
	"github.com/onboarding/backend/internal/infrastructure/session"
)

// SendDocumentRequest is Phase 1: ask a new joiner for their joining documents
func (s *Service) SendDocumentRequest(ctx context.Context, sess *session.Session, req DocumentRequest) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	if err := onboarding.RequireFields(req.Name, req.Email, req.Position); err != nil {
		return nil, err
	}
	if err := requireEmail(req.Email, "employee"); err != nil {
		return nil, err
	}
	category, err := onboarding.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	msg, err := s.composer.DocumentRequest(category, strings.TrimSpace(req.Name), strings.TrimSpace(req.Position))
	if err != nil {
		return nil, err
	}
	return s.send(ctx, sess, "documents", strings.TrimSpace(req.Email), onboarding.ParseCCList(req.CC), msg), nil
}

// SendWelcome is Phase 4: welcome the joiner on their official address
func (s *Service) SendWelcome(ctx context.Context, sess *session.Session, req WelcomeRequest) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	if err := onboarding.RequireFields(req.Name, req.Email); err != nil {
		return nil, err
	}
	if err := requireEmail(req.Email, "official"); err != nil {
		return nil, err
	}

	msg, err := s.composer.Welcome(strings.TrimSpace(req.Name), strings.TrimSpace(req.FormURL))
	if err != nil {
		return nil, err
	}
	return s.send(ctx, sess, "welcome", strings.TrimSpace(req.Email), onboarding.ParseCCList(req.CC), msg), nil
}

// SendBackgroundVerification is Phase 5: ask the previous employer to verify the candidate
func (s *Service) SendBackgroundVerification(ctx context.Context, sess *session.Session, req BGVRequest) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	if err := onboarding.RequireFields(req.Name, req.HREmail, req.Designation, req.Period); err != nil {
		return nil, err
	}
	if err := requireEmail(req.HREmail, "HR"); err != nil {
		return nil, err
	}

	msg, err := s.composer.BackgroundVerification(BGVDetails{
		Name:        strings.TrimSpace(req.Name),
		EmployeeID:  strings.TrimSpace(req.EmployeeID),
		Designation: strings.TrimSpace(req.Designation),
		Period:      strings.TrimSpace(req.Period),
		Manager:     strings.TrimSpace(req.Manager),
	})
	if err != nil {
		return nil, err
	}
	return s.send(ctx, sess, "bgv", strings.TrimSpace(req.HREmail), onboarding.ParseCCList(req.CC), msg), nil
}

// =============================================================================
// Phase 6: exit
// =============================================================================

// SendManagerConfirmation asks the manager to confirm knowledge transfer
func (s *Service) SendManagerConfirmation(ctx context.Context, sess *session.Session, req ManagerConfirmationRequest) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	if err := onboarding.RequireFields(req.Name, req.ManagerName, req.ManagerEmail, req.LastWorkingDay); err != nil {
		return nil, err
	}
	if err := requireEmail(req.ManagerEmail, "manager"); err != nil {
		return nil, err
	}
	title, err := onboarding.ParseTitle(req.Title)
	if err != nil {
		return nil, err
	}
	lwd, err := onboarding.ParseDate(req.LastWorkingDay)
	if err != nil {
		return nil, err
	}

	employee := onboarding.EmployeeRecord{Name: strings.TrimSpace(req.Name), Title: title}
	msg, err := s.composer.ManagerConfirmation(employee, strings.TrimSpace(req.ManagerName), lwd)
	if err != nil {
		return nil, err
	}
	return s.send(ctx, sess, "exit_manager", strings.TrimSpace(req.ManagerEmail), onboarding.ParseCCList(req.CC), msg), nil
}

// SendExitNotice confirms the last working day to the exiting employee
func (s *Service) SendExitNotice(ctx context.Context, sess *session.Session, req ExitNoticeRequest) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	if err := onboarding.RequireFields(req.Name, req.Email, req.Category, req.LastWorkingDay); err != nil {
		return nil, err
	}
	if err := requireEmail(req.Email, "employee"); err != nil {
		return nil, err
	}
	category, err := onboarding.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	lwd, err := onboarding.ParseDate(req.LastWorkingDay)
	if err != nil {
		return nil, err
	}

	msg, err := s.composer.ExitNotice(category, strings.TrimSpace(req.Name), lwd, req.ManagerEmail)
	if err != nil {
		return nil, err
	}
	return s.send(ctx, sess, "exit_employee", strings.TrimSpace(req.Email), onboarding.ParseCCList(req.CC), msg), nil
}

// SendAssetReturn asks for the company device back; the personal address is copied
func (s *Service) SendAssetReturn(ctx context.Context, sess *session.Session, req AssetReturnRequest) (*SendOutcome, error) {
	if err := requireConfigured(sess); err != nil {
		return nil, err
	}
	if err := onboarding.RequireFields(req.Name, req.Email, req.PersonalEmail, req.AssetType); err != nil {
		return nil, err
	}
	if !onboarding.ValidateEmail(req.Email) || !onboarding.ValidateEmail(req.PersonalEmail) {
		return nil, ErrInvalidEmails
	}
	assetType, err := onboarding.ParseAssetType(req.AssetType)
	if err != nil {
		return nil, err
	}

	msg, err := s.composer.AssetReturn(AssetDispatch{
		Name:         strings.TrimSpace(req.Name),
		AssetType:    assetType,
		Address:      strings.TrimSpace(req.Address),
		ContactName:  strings.TrimSpace(req.ContactName),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
	})
	if err != nil {
		return nil, err
	}
	personal := strings.TrimSpace(req.PersonalEmail)
	return s.send(ctx, sess, "asset_return", strings.TrimSpace(req.Email), []string{personal}, msg), nil
}

// RecordAccessRemoval builds the access-removal report; nothing is sent
func (s *Service) RecordAccessRemoval(sess *session.Session, req AccessRemovalRequest) onboarding.AccessRemoval {
	removal := onboarding.NewAccessRemoval(strings.TrimSpace(req.Name), req.Platforms)
	s.logger.Info("Access removal recorded",
		zap.String("session_id", sess.ID),
		zap.String("employee", removal.Employee),
		zap.Strings("platforms", removal.Removed),
	)
	return removal
}
