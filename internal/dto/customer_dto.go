package dto

type CreateCustomerRequest struct {
	Nama   string `json:"nama" validate:"required"`
	Alamat string `json:"alamat" validate:"required"`
	// NIK is optional but unique across customers when present.
	NIK          *string `json:"nik"`
	TempatLahir  *string `json:"tempat_lahir"`
	TanggalLahir *string `json:"tanggal_lahir"` // "2006-01-02"
}

type CustomerResponse struct {
	ID           string  `json:"id"`
	Nama         string  `json:"nama"`
	Alamat       string  `json:"alamat"`
	NIK          *string `json:"nik,omitempty"`
	TempatLahir  *string `json:"tempat_lahir,omitempty"`
	TanggalLahir *string `json:"tanggal_lahir,omitempty"`
}

type CustomerFilter struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
}
