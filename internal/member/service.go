package member

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nkulisa-npc/membership-site/internal/mirror"
	"github.com/nkulisa-npc/membership-site/internal/model"
	"github.com/nkulisa-npc/membership-site/internal/shared/database"
	"github.com/nkulisa-npc/membership-site/internal/shared/logger"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	mirrorStore      mirror.Store
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository, mirrorStore mirror.Store) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		mirrorStore:      mirrorStore,
	}
}

// Register persists a new member and pushes a best-effort copy to the mirror
// store. The insert is the durability boundary: once it commits, the
// registration has succeeded regardless of the mirror outcome.
func (s *MemberService) Register(ctx context.Context, request *RegisterRequest) (*model.Member, error) {
	log := logger.FromContext(ctx)

	newMember := model.NewMember(request.Name, request.Email, request.Phone, request.Package)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		// Fast-path check so a duplicate submission gets a clean answer
		// without hitting the constraint. The unique index below is still
		// the authority.
		exists, err := s.memberRepository.IsExist(ctx, tx, newMember.Email)
		if err != nil {
			log.Error("Failed to check member existence", "error", err)
			return fmt.Errorf("check member existence: %w", errors.Join(err, ErrRegistrationFailed))
		}
		if exists {
			log.Warn("Member already registered", "email", logger.MaskEmail(newMember.Email))
			return fmt.Errorf("email taken: %w", ErrMemberAlreadyExists)
		}

		if err := s.memberRepository.Create(ctx, tx, newMember); err != nil {
			// A registration racing past the existence check lands here as
			// a unique-constraint violation and gets the same outcome.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn("Member already registered", "email", logger.MaskEmail(newMember.Email))
				return fmt.Errorf("email taken: %w", ErrMemberAlreadyExists)
			}
			log.Error("Failed to create member", "error", err)
			return fmt.Errorf("create member: %w", errors.Join(err, ErrRegistrationFailed))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Registration is committed; the mirror copy never affects the outcome.
	if err := s.mirrorStore.PushMember(ctx, newMember); err != nil {
		log.Error("Mirror store write failed",
			"error", err,
			"member_id", newMember.ID,
		)
	}

	log.Info("Member registered",
		"member_id", newMember.ID,
		"email", logger.MaskEmail(newMember.Email),
		"package", newMember.Package,
	)
	return newMember, nil
}
