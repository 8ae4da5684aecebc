package state

// UserProfile holds the resident identity shown by the Settings, Account,
// Home and EditProfile screens. Created on registration completion or a
// successful login; cleared on sign-out.
type UserProfile struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	DOB       string
	Gender    string
	AvatarURI string
}

// PrescriptionUpload is the normalized descriptor produced by the image
// picker: a transient staging value between "pick image" and "submit request".
type PrescriptionUpload struct {
	ID       string
	URI      string
	Name     string
	MIMEType string
}

// MedicineRequest is one submitted intake request. Immutable once created;
// status transitions past "pending" belong to the barangay back office.
type MedicineRequest struct {
	ID                string
	PatientName       string
	Date              string
	Medicines         []string
	DeliveryAddress   string
	Status            string
	PrescriptionImage string
	EmailAddress      string
	PhoneNumber       string
	AdditionalNotes   string
}

// RequestForm carries the fields collected by the intake form.
type RequestForm struct {
	PatientName     string
	EmailAddress    string
	PhoneNumber     string
	DeliveryAddress string
	AdditionalNotes string
}
