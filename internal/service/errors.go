package service

import "errors"

var (
	ErrInvalidCoachName = errors.New("教练姓名不能为空")
	ErrUnknownTeam      = errors.New("未知球队")
)
