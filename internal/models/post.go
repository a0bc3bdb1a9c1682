package models

// PostDoc es un artículo de la comunidad. El body se guarda tal cual
// (markdown); el render a HTML es cosa del front.
type PostDoc struct {
	PostID    int    `json:"postId" bson:"postId"`
	AuthorID  int    `json:"authorId" bson:"authorId"`
	Body      string `json:"body" bson:"body"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

// CommentDoc es un comentario sobre un post. Disabled lo usan los
// moderadores para ocultar comentarios sin borrarlos.
type CommentDoc struct {
	CommentID int    `json:"commentId" bson:"commentId"`
	PostID    int    `json:"postId" bson:"postId"`
	AuthorID  int    `json:"authorId" bson:"authorId"`
	Body      string `json:"body" bson:"body"`
	Disabled  bool   `json:"disabled" bson:"disabled"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}
