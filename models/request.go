package models

// ListRoomsRequest carries the discovery feed query parameters.
type ListRoomsRequest struct {
	ParentCategoryID uint   `form:"parentCategoryId"`
	ChildCategoryID  uint   `form:"childCategoryId"`
	Keyword          string `form:"keyWord"`
	OrderBy          string `form:"orderBy"`
	RankType         string `form:"rankType"`
	RangTimeStart    int64  `form:"rangTimeStart"` // unix seconds, 0 = unbounded
	RangTimeEnd      int64  `form:"rangTimeEnd"`
	NowPage          int    `form:"nowPage,default=1"`
	PageSize         int    `form:"pageSize,default=10"`
}

// ListUsersRequest carries the user leaderboard query parameters.
type ListUsersRequest struct {
	Keyword       string `form:"keyWord"`
	OrderBy       string `form:"orderBy"`
	RangTimeStart int64  `form:"rangTimeStart"`
	RangTimeEnd   int64  `form:"rangTimeEnd"`
	NowPage       int    `form:"nowPage,default=1"`
	PageSize      int    `form:"pageSize,default=10"`
}

// ListContributorsRequest carries the per-room leaderboard query parameters.
type ListContributorsRequest struct {
	OrderBy  string `form:"orderBy"`
	RankType string `form:"rankType"`
	NowPage  int    `form:"nowPage,default=1"`
	PageSize int    `form:"pageSize,default=10"`
}

// ListVideosRequest carries the video listing query parameters.
type ListVideosRequest struct {
	UserID        uint   `form:"userId"`
	LiveRoomID    uint   `form:"liveRoomId"`
	Keyword       string `form:"keyWord"`
	OrderBy       string `form:"orderBy"`
	RangTimeStart int64  `form:"rangTimeStart"`
	RangTimeEnd   int64  `form:"rangTimeEnd"`
	NowPage       int    `form:"nowPage,default=1"`
	PageSize      int    `form:"pageSize,default=10"`
}

// RecordMessageRequest posts one comment/like/gift event into a room's log.
type RecordMessageRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	MsgType  int    `json:"msg_type"`
	Content  string `json:"content"`
	GiftName string `json:"gift_name"`
}

// RecordViewRequest records one viewing session of a room.
type RecordViewRequest struct {
	UserID          uint  `json:"user_id" binding:"required"`
	DurationSeconds int64 `json:"duration_seconds"`
}
