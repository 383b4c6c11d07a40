package apperror

import "errors"

// RedirectFor menentukan halaman tujuan ketika sebuah guard menolak request.
// Page handlers memakai hint ini untuk redirect; action handlers cukup
// mengembalikan error JSON dan mengabaikannya. roleHome adalah halaman utama
// milik role si pemanggil ("" jika belum diketahui).
func RedirectFor(err error, roleHome string) string {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return "/login"
	case errors.Is(err, ErrAccountBlocked):
		return "/blocked"
	case errors.Is(err, ErrProfileNotFound):
		return "/error"
	case errors.Is(err, ErrInsufficientRole):
		if roleHome != "" {
			return roleHome
		}
		return "/"
	case errors.Is(err, ErrNotOwner):
		return "/owner/hostels"
	case errors.Is(err, ErrNoProfile):
		return "/join-hostel"
	default:
		return ""
	}
}
