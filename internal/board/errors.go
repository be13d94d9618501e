package board

import "errors"

// Move rejection reasons. MakeMove and Validate wrap these with detail;
// use errors.Is to classify.
var (
	ErrOffBoard             = errors.New("square off board")
	ErrNoPiece              = errors.New("no piece on origin square")
	ErrBadShape             = errors.New("piece cannot move that way")
	ErrWrongTurn            = errors.New("not that side's turn")
	ErrFriendlyFire         = errors.New("destination holds a friendly piece")
	ErrPathBlocked          = errors.New("path is blocked")
	ErrPawnRule             = errors.New("pawn move not allowed")
	ErrCastlingRights       = errors.New("castling right lost")
	ErrCastlingBlocked      = errors.New("castling path not clear")
	ErrCastlingThroughCheck = errors.New("king passes through an attacked square")
	ErrKingInCheck          = errors.New("move leaves king in check")
)

// Snapshot validation errors.
var (
	ErrKingCount        = errors.New("each side must have exactly one king")
	ErrInvalidSide      = errors.New("invalid side to move")
	ErrOpponentInCheck  = errors.New("side not to move is in check")
	ErrInvalidEnPassant = errors.New("en passant square has no pawn to capture")
)

// Reason returns a short stable name for a rejection error, suitable as a
// statistics key. Unknown errors map to "other".
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.name
		}
	}
	return "other"
}

var reasons = []struct {
	err  error
	name string
}{
	{ErrOffBoard, "off_board"},
	{ErrNoPiece, "no_piece"},
	{ErrBadShape, "bad_shape"},
	{ErrWrongTurn, "wrong_turn"},
	{ErrFriendlyFire, "friendly_fire"},
	{ErrPathBlocked, "path_blocked"},
	{ErrPawnRule, "pawn_rule"},
	{ErrCastlingRights, "castling_rights"},
	{ErrCastlingBlocked, "castling_blocked"},
	{ErrCastlingThroughCheck, "castling_through_check"},
	{ErrKingInCheck, "king_in_check"},
}
