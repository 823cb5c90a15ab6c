package services

import (
	"context"
	"strings"

	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/member"
)

type MemberService struct {
	members member.Repository
}

func NewMemberService(members member.Repository) *MemberService {
	return &MemberService{members: members}
}

func (s *MemberService) GetPaginated(ctx context.Context, params *member.FindParams) ([]member.Member, int64, error) {
	if params != nil {
		params.Q = strings.TrimSpace(params.Q)
	}
	return s.members.GetPaginated(ctx, params)
}

func (s *MemberService) GetByMemberID(ctx context.Context, memberID string) (member.Member, error) {
	return s.members.GetByMemberID(ctx, memberID)
}

func (s *MemberService) Upsert(ctx context.Context, m member.Member) (member.Member, bool, error) {
	return s.members.Upsert(ctx, m)
}
