package v1specs

import (
	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/json"
)

// envelope writes {"success":true,"message":...} and leaves the object open.
func envelope(e *jx.Encoder, message string) {
	e.ObjStart()
	e.FieldStart("success")
	e.Bool(true)
	if message != "" {
		e.FieldStart("message")
		e.Str(message)
	}
}

func encodeBooks(e *jx.Encoder, books []Book) {
	e.ArrStart()
	for i := range books {
		books[i].Encode(e)
	}
	e.ArrEnd()
}

// Encode implements json.Marshaler.
func (s *RegisterCreated) Encode(e *jx.Encoder) {
	envelope(e, s.Message)
	e.FieldStart("data")
	s.Data.Encode(e)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *LoginOK) Encode(e *jx.Encoder) {
	envelope(e, s.Message)
	e.FieldStart("data")
	s.Data.Encode(e)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *LogoutOK) Encode(e *jx.Encoder) {
	envelope(e, s.Message)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *UserOK) Encode(e *jx.Encoder) {
	envelope(e, "")
	e.FieldStart("data")
	s.Data.Encode(e)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *BookListOK) Encode(e *jx.Encoder) {
	envelope(e, "")
	e.FieldStart("data")
	encodeBooks(e, s.Data)
	e.FieldStart("pagination")
	s.Pagination.Encode(e)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *BookOK) Encode(e *jx.Encoder) {
	envelope(e, "")
	e.FieldStart("data")
	s.Data.Encode(e)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *ReserveOK) Encode(e *jx.Encoder) {
	envelope(e, s.Message)
	e.FieldStart("data")
	s.Data.Encode(e)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *LoanListOK) Encode(e *jx.Encoder) {
	envelope(e, "")
	e.FieldStart("data")
	e.ArrStart()
	for i := range s.Data {
		s.Data[i].Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *RenewOK) Encode(e *jx.Encoder) {
	envelope(e, s.Message)
	e.FieldStart("data")
	e.ObjStart()
	e.FieldStart("newDueDate")
	json.EncodeDateTime(e, s.Data.NewDueDate)
	e.FieldStart("loan")
	s.Data.Loan.Encode(e)
	e.ObjEnd()
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *FineListOK) Encode(e *jx.Encoder) {
	envelope(e, "")
	e.FieldStart("data")
	e.ArrStart()
	for i := range s.Data {
		s.Data[i].Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *WishlistOK) Encode(e *jx.Encoder) {
	envelope(e, "")
	e.FieldStart("data")
	encodeBooks(e, s.Data)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *WishlistToggleOK) Encode(e *jx.Encoder) {
	envelope(e, s.Message)
	e.FieldStart("action")
	e.Str(s.Action)
	e.FieldStart("wishlist")
	encodeUUIDs(e, s.Wishlist)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *DashboardOK) Encode(e *jx.Encoder) {
	envelope(e, "")
	e.FieldStart("data")
	s.Data.Encode(e)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *LibraryStatusOK) Encode(e *jx.Encoder) {
	envelope(e, "")
	e.FieldStart("data")
	s.Data.Encode(e)
	e.ObjEnd()
}
