package v1specs

import (
	"math"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/ogen-go/ogen/json"
)

type encoder interface {
	Encode(e *jx.Encoder)
}

type decoder interface {
	Decode(d *jx.Decoder) error
}

// Encode implements json.Marshaler.
func (s *Error) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(s.Code)
	e.FieldStart("message")
	e.Str(s.Message)
	e.ObjEnd()
}

// Decode decodes Error from json.
func (s *Error) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode Error to nil")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "code":
			s.Code, err = d.Str()
		case "message":
			s.Message, err = d.Str()
		default:
			return d.Skip()
		}

		return fieldErr(err, k)
	}); err != nil {
		return errors.Wrap(err, "decode Error")
	}

	return nil
}

func encodeUUIDs(e *jx.Encoder, ids []uuid.UUID) {
	e.ArrStart()
	for _, id := range ids {
		json.EncodeUUID(e, id)
	}
	e.ArrEnd()
}

func encodeStrings(e *jx.Encoder, values []string) {
	e.ArrStart()
	for _, v := range values {
		e.Str(v)
	}
	e.ArrEnd()
}

func encodeOptString(e *jx.Encoder, name string, o OptString) {
	if o.Set {
		e.FieldStart(name)
		e.Str(o.Value)
	}
}

func encodeOptDateTime(e *jx.Encoder, name string, o OptDateTime) {
	e.FieldStart(name)
	if o.Set {
		json.EncodeDateTime(e, o.Value)
	} else {
		e.Null()
	}
}

// Encode implements json.Marshaler.
func (s *User) Encode(e *jx.Encoder) {
	e.ObjStart()
	s.encodeFields(e)
	e.ObjEnd()
}

func (s *User) encodeFields(e *jx.Encoder) {
	e.FieldStart("id")
	json.EncodeUUID(e, s.ID)
	e.FieldStart("studentId")
	e.Str(s.StudentId)
	e.FieldStart("name")
	e.Str(s.Name)
	e.FieldStart("email")
	e.Str(s.Email)
	e.FieldStart("role")
	e.Str(s.Role)
	e.FieldStart("wishlist")
	encodeUUIDs(e, s.Wishlist)
	e.FieldStart("completedBooks")
	encodeUUIDs(e, s.CompletedBooks)
}

// Encode implements json.Marshaler.
func (s *Book) Encode(e *jx.Encoder) {
	e.ObjStart()
	s.encodeFields(e)
	e.ObjEnd()
}

func (s *Book) encodeFields(e *jx.Encoder) {
	e.FieldStart("id")
	json.EncodeUUID(e, s.ID)
	e.FieldStart("title")
	e.Str(s.Title)
	e.FieldStart("authors")
	encodeStrings(e, s.Authors)
	encodeOptString(e, "isbn", s.Isbn)
	e.FieldStart("summary")
	e.Str(s.Summary)
	e.FieldStart("coverImage")
	e.Str(s.CoverImage)
	e.FieldStart("genres")
	encodeStrings(e, s.Genres)
	e.FieldStart("publicationYear")
	e.Int(s.PublicationYear)
	e.FieldStart("type")
	e.Str(s.Type)
	e.FieldStart("status")
	e.Str(s.Status)
	encodeOptString(e, "rfidTag", s.RfidTag)
	encodeOptString(e, "location", s.Location)
	encodeOptString(e, "fileUrl", s.FileUrl)
	encodeOptString(e, "format", s.Format)
	e.FieldStart("createdAt")
	json.EncodeDateTime(e, s.CreatedAt)
	e.FieldStart("updatedAt")
	json.EncodeDateTime(e, s.UpdatedAt)
}

// Encode implements json.Marshaler.
func (s *CurrentLoan) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("borrowerName")
	e.Str(s.BorrowerName)
	e.FieldStart("dueDate")
	json.EncodeDateTime(e, s.DueDate)
	e.FieldStart("status")
	e.Str(s.Status)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *BookDetail) Encode(e *jx.Encoder) {
	e.ObjStart()
	s.Book.encodeFields(e)
	e.FieldStart("currentLoan")
	if s.CurrentLoan != nil {
		s.CurrentLoan.Encode(e)
	} else {
		e.Null()
	}
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *Loan) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	json.EncodeUUID(e, s.ID)
	e.FieldStart("bookId")
	json.EncodeUUID(e, s.BookId)
	e.FieldStart("userId")
	json.EncodeUUID(e, s.UserId)
	e.FieldStart("checkoutDate")
	json.EncodeDateTime(e, s.CheckoutDate)
	e.FieldStart("dueDate")
	json.EncodeDateTime(e, s.DueDate)
	encodeOptDateTime(e, "returnDate", s.ReturnDate)
	e.FieldStart("status")
	e.Str(s.Status)
	if s.Book != nil {
		e.FieldStart("book")
		s.Book.Encode(e)
	}
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *Fine) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	json.EncodeUUID(e, s.ID)
	e.FieldStart("loanId")
	json.EncodeUUID(e, s.LoanId)
	e.FieldStart("userId")
	json.EncodeUUID(e, s.UserId)
	e.FieldStart("amount")
	e.Int64(s.Amount)
	e.FieldStart("reason")
	e.Str(s.Reason)
	e.FieldStart("status")
	e.Str(s.Status)
	e.FieldStart("createdAt")
	json.EncodeDateTime(e, s.CreatedAt)
	e.FieldStart("updatedAt")
	json.EncodeDateTime(e, s.UpdatedAt)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *LibraryStatus) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("totalSeats")
	e.Int(s.TotalSeats)
	e.FieldStart("occupiedSeats")
	e.Int(s.OccupiedSeats)
	e.FieldStart("isOpen")
	e.Bool(s.IsOpen)
	encodeOptDateTime(e, "lastResetAt", s.LastResetAt)
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *Dashboard) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("user")
	s.User.Encode(e)
	e.FieldStart("stats")
	e.ObjStart()
	e.FieldStart("totalBooks")
	e.Int64(s.Stats.TotalBooks)
	e.FieldStart("totalMembers")
	e.Int64(s.Stats.TotalMembers)
	e.FieldStart("borrowedBooks")
	e.Int64(s.Stats.BorrowedBooks)
	e.FieldStart("pendingFines")
	e.Int64(s.Stats.PendingFines)
	e.ObjEnd()
	e.ObjEnd()
}

// Encode implements json.Marshaler.
func (s *Pagination) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("page")
	e.Int(s.Page)
	e.FieldStart("limit")
	e.Int(s.Limit)
	e.FieldStart("totalPages")
	e.Int(s.TotalPages)
	e.FieldStart("totalCount")
	e.Int64(s.TotalCount)
	e.ObjEnd()
}

// Decode decodes RegisterRequest from json.
func (s *RegisterRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode RegisterRequest to nil")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "studentId":
			s.StudentId, err = decodeLooseString(d)
		case "name":
			s.Name, err = decodeLooseString(d)
		case "email":
			s.Email, err = decodeLooseString(d)
		case "password":
			s.Password, err = decodeLooseString(d)
		default:
			return d.Skip()
		}

		return fieldErr(err, k)
	}); err != nil {
		return errors.Wrap(err, "decode RegisterRequest")
	}

	return nil
}

// Decode decodes LoginRequest from json.
func (s *LoginRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode LoginRequest to nil")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "studentId":
			s.StudentId, err = decodeLooseString(d)
		case "password":
			s.Password, err = decodeLooseString(d)
		default:
			return d.Skip()
		}

		return fieldErr(err, k)
	}); err != nil {
		return errors.Wrap(err, "decode LoginRequest")
	}

	return nil
}

// Decode decodes ReserveRequest from json.
func (s *ReserveRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode ReserveRequest to nil")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "bookId":
			s.BookId, err = decodeOptUUID(d)
		case "duration":
			s.Duration, err = decodeLooseInt(d)
		default:
			return d.Skip()
		}

		return fieldErr(err, k)
	}); err != nil {
		return errors.Wrap(err, "decode ReserveRequest")
	}

	return nil
}

// Decode decodes RenewRequest from json.
func (s *RenewRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode RenewRequest to nil")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		if string(k) != "loanId" {
			return d.Skip()
		}
		var err error
		s.LoanId, err = decodeOptUUID(d)

		return fieldErr(err, k)
	}); err != nil {
		return errors.Wrap(err, "decode RenewRequest")
	}

	return nil
}

// Decode decodes WishlistToggleRequest from json.
func (s *WishlistToggleRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode WishlistToggleRequest to nil")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		if string(k) != "bookId" {
			return d.Skip()
		}
		var err error
		s.BookId, err = decodeOptUUID(d)

		return fieldErr(err, k)
	}); err != nil {
		return errors.Wrap(err, "decode WishlistToggleRequest")
	}

	return nil
}

// decodeLooseString reads a string, treating null as empty.
func decodeLooseString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	return d.Str()
}

// decodeOptUUID reads a UUID, treating null and "" as uuid.Nil.
func decodeOptUUID(d *jx.Decoder) (uuid.UUID, error) {
	switch d.Next() {
	case jx.Null:
		return uuid.Nil, d.Null()
	case jx.String:
		raw, err := d.StrBytes()
		if err != nil {
			return uuid.Nil, err
		}
		if len(raw) == 0 {
			return uuid.Nil, nil
		}

		return uuid.ParseBytes(raw)
	default:
		return json.DecodeUUID(d)
	}
}

// decodeLooseInt accepts a JSON number or a string starting with an integer
// ("7", "7days", "7.5"). Fractions are truncated and values outside the int32
// range are clamped. Anything else is left unset.
func decodeLooseInt(d *jx.Decoder) (OptInt, error) {
	switch d.Next() {
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return OptInt{}, err
		}
		if v, err := n.Int64(); err == nil {
			return NewOptInt(clampInt(v)), nil
		}
		if f, err := n.Float64(); err == nil {
			return NewOptInt(clampFloat(f)), nil
		}

		return OptInt{}, nil
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return OptInt{}, err
		}
		if v, ok := leadingInt(s); ok {
			return NewOptInt(clampInt(v)), nil
		}

		return OptInt{}, nil
	default:
		return OptInt{}, d.Skip()
	}
}

// leadingInt parses the optionally signed decimal prefix of s after leading
// whitespace.
func leadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var v int64
	digits := 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		if v <= math.MaxInt32 {
			v = v*10 + int64(s[digits]-'0')
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		v = -v
	}

	return v, true
}

func clampInt(v int64) int {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int(v)
	}
}

func clampFloat(f float64) int {
	switch {
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int(f)
	}
}

func fieldErr(err error, k []byte) error {
	if err != nil {
		return errors.Wrapf(err, "decode field %q", k)
	}

	return nil
}
