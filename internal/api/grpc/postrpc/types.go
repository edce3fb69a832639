package postrpc

// Wire messages for the post services. IDs cross the wire as strings so the
// protocol stays agnostic of the identifier type behind them.

type CreatePostRequest struct {
	Title   string `cbor:"title"`
	Content string `cbor:"content"`
}

type UpdatePostRequest struct {
	PostID  string `cbor:"post_id"`
	Title   string `cbor:"title"`
	Content string `cbor:"content"`
}

type DeletePostRequest struct {
	PostID string `cbor:"post_id"`
}

type DeletePostResponse struct {
	PostID string `cbor:"post_id"`
	UserID string `cbor:"user_id"`
}

type GetPostRequest struct {
	PostID string `cbor:"post_id"`
}

type ListPostsRequest struct {
	Limit  int32 `cbor:"limit"`
	Offset int32 `cbor:"offset"`
}

type PostResponse struct {
	ID       string `cbor:"id"`
	UserID   string `cbor:"user_id"`
	Username string `cbor:"username"`
	Title    string `cbor:"title"`
	Content  string `cbor:"content"`
}

type ListPostsResponse struct {
	Posts []*PostResponse `cbor:"posts"`
}
