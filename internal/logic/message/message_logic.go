package message

import (
	"context"
	"database/sql"
	"errors"

	"chainboard/internal/authz"
	"chainboard/internal/errorx"
	"chainboard/internal/model"
	"chainboard/internal/pagination"
	"chainboard/internal/svc"
	"chainboard/internal/token"
	"chainboard/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type MessageLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MessageLogic {
	return &MessageLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Send delivers a message from the actor to another user, optionally tied to
// a job posting.
func (l *MessageLogic) Send(actor token.Actor, req *types.MessageSendReq) (*types.MessageInfo, error) {
	if req.ReceiverId == actor.UserId {
		return nil, errorx.BadRequest("cannot send a message to yourself")
	}
	if _, err := l.svcCtx.UsersDao.FindOneById(l.ctx, req.ReceiverId); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("receiver not found")
		}
		return nil, err
	}
	if req.JobId != 0 {
		if _, err := l.svcCtx.JobsDao.FindOneById(l.ctx, req.JobId); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, errorx.NotFound("job not found")
			}
			return nil, err
		}
	}

	msg := &model.Messages{
		SenderId:   actor.UserId,
		ReceiverId: req.ReceiverId,
		JobId:      sql.NullInt64{Int64: req.JobId, Valid: req.JobId != 0},
		Content:    req.Content,
	}
	if err := l.svcCtx.MessagesDao.Insert(l.ctx, msg); err != nil {
		return nil, err
	}
	info := toMessageInfo(msg)
	return &info, nil
}

// List pages the actor's sent and received messages.
func (l *MessageLogic) List(actor token.Actor, req *types.MessageListReq) (*types.MessageListResp, error) {
	page, pageSize := pagination.Normalize(req.Page, req.PageSize)
	msgs, total, err := l.svcCtx.MessagesDao.FindPageByParticipant(l.ctx, actor.UserId, pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]types.MessageInfo, 0, len(msgs))
	for _, m := range msgs {
		list = append(list, toMessageInfo(m))
	}
	return &types.MessageListResp{List: list, Total: total, Page: page, PageSize: pageSize}, nil
}

// Get returns one message to its participants. Non-participants receive the
// same error as a missing message.
func (l *MessageLogic) Get(actor token.Actor, req *types.MessageIdReq) (*types.MessageInfo, error) {
	msg, err := l.findVisible(actor, req.Id)
	if err != nil {
		return nil, err
	}
	info := toMessageInfo(msg)
	return &info, nil
}

// MarkRead flags a message as read. Receiver only; the sender, who can
// already see the message, gets an explicit denial.
func (l *MessageLogic) MarkRead(actor token.Actor, req *types.MessageIdReq) (*types.MessageInfo, error) {
	msg, err := l.findVisible(actor, req.Id)
	if err != nil {
		return nil, err
	}
	if msg.ReceiverId != actor.UserId && !actor.IsAdmin() {
		return nil, errorx.Forbidden("Only the receiver can mark a message as read")
	}

	if err := l.svcCtx.MessagesDao.MarkRead(l.ctx, msg.Id); err != nil {
		return nil, err
	}
	msg.IsRead = true
	info := toMessageInfo(msg)
	return &info, nil
}

func (l *MessageLogic) findVisible(actor token.Actor, id int64) (*model.Messages, error) {
	msg, err := l.svcCtx.MessagesDao.FindOneById(l.ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.NotFound("message not found")
		}
		return nil, err
	}
	if !authz.IsParticipant(actor, msg.SenderId, msg.ReceiverId) {
		return nil, errorx.NotFound("message not found")
	}
	return msg, nil
}

func toMessageInfo(msg *model.Messages) types.MessageInfo {
	return types.MessageInfo{
		Id:         msg.Id,
		SenderId:   msg.SenderId,
		ReceiverId: msg.ReceiverId,
		JobId:      msg.JobId.Int64,
		Content:    msg.Content,
		IsRead:     msg.IsRead,
		CreatedAt:  msg.CreatedAt.Unix(),
	}
}
