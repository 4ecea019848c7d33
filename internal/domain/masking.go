package domain

// ContentKind selects which deletion placeholder applies.
type ContentKind int

const (
	KindComment ContentKind = iota
	KindReply
)

// Fixed placeholders shown instead of soft-deleted content. The raw content
// stays in the database untouched.
const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)

// MaskContent returns the displayable content for an entity. Non-deleted
// content passes through byte for byte.
func MaskContent(raw string, isDeleted bool, kind ContentKind) string {
	if !isDeleted {
		return raw
	}
	if kind == KindReply {
		return DeletedReplyPlaceholder
	}
	return DeletedCommentPlaceholder
}
