package driver

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrAuthIDIsRequired is returned when registering a driver without an external auth id.
	ErrAuthIDIsRequired = errs.NewValueIsRequiredError("authId")
	// ErrNameIsRequired is returned when registering a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when registering a driver without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
	// ErrDriverIsDeleted is returned when mutating a soft-deleted driver.
	ErrDriverIsDeleted = errs.NewConflictError("driver mutation", "driver is deleted")
)

// Driver is the aggregate root of the dispatch domain. It owns a driver's
// identity and vehicle, the status state machine, the latest location fix,
// rolling performance stats, and the append-only rating history.
//
// Key invariants, enforced by every transition method:
//   - status == StatusOnDelivery if and only if an active delivery id is set
//   - the location fix is complete or absent, never partial
//   - stats averages correspond exactly to the recorded completions/ratings
//   - a soft-deleted driver is offline with no active delivery and no push token
//
// The aggregate performs no locking of its own: callers serialize concurrent
// operations on the same driver (one transaction per driver record), while
// operations on different drivers never contend.
type Driver struct {
	id     kernel.UUID
	authID string
	name   string
	email  string
	phone  string

	vehicle Vehicle

	status           Status
	activeDeliveryID *kernel.UUID
	locationFix      *LocationFix

	stats   Stats
	ratings []Rating

	emailVerified     bool
	phoneVerified     bool
	documentsVerified bool

	pushToken string

	isDeleted bool
	deletedAt *time.Time

	guard guard.ConstructorGuard
}

// NewDriver registers a new driver. The driver starts offline with zeroed
// stats, no location, no ratings, and all verification flags cleared.
//
// Parameters:
//   - id: internal unique identifier
//   - authID: stable external authentication id (unique per driver)
//   - name, email, phone: contact identity; name and email are required
//   - vehicle: the vehicle the driver operates
func NewDriver(id kernel.UUID, authID, name, email, phone string, vehicle Vehicle) (*Driver, error) {
	d := &Driver{
		status: StatusOffline,
		stats:  NewStats(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setAuthID(authID),
		d.setName(name),
		d.setEmail(email),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	d.phone = phone
	return d, nil
}

// RestoreDriverParams carries the full persisted state of a driver.
type RestoreDriverParams struct {
	ID     kernel.UUID
	AuthID string
	Name   string
	Email  string
	Phone  string

	Vehicle Vehicle

	Status           Status
	ActiveDeliveryID *kernel.UUID
	LocationFix      *LocationFix

	Stats   Stats
	Ratings []Rating

	EmailVerified     bool
	PhoneVerified     bool
	DocumentsVerified bool

	PushToken string

	IsDeleted bool
	DeletedAt *time.Time
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
// Unlike NewDriver it accepts the complete operational state, and it verifies
// the cross-field invariants that persistence cannot express: the
// status/active-delivery pairing, the rating-count consistency, and the
// forced-offline state of deleted drivers.
func RestoreDriver(params RestoreDriverParams) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(params.ID),
		d.setAuthID(params.AuthID),
		d.setName(params.Name),
		d.setEmail(params.Email),
		d.setVehicle(params.Vehicle),
		params.Status.Validate(),
		params.Stats.Validate(),
	); err != nil {
		return nil, err
	}

	if (params.Status == StatusOnDelivery) != (params.ActiveDeliveryID != nil) {
		return nil, errs.NewValueIsInvalidError("activeDeliveryId must be set exactly when status is on_delivery")
	}
	if params.IsDeleted && params.Status != StatusOffline {
		return nil, errs.NewValueIsInvalidError("deleted driver must be offline")
	}
	if len(params.Ratings) != params.Stats.TotalRatings() {
		return nil, errs.NewValueIsInvalidError("ratings count must equal stats.totalRatings")
	}
	for _, r := range params.Ratings {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	if params.LocationFix != nil {
		if err := params.LocationFix.Validate(); err != nil {
			return nil, err
		}
	}

	d.phone = params.Phone
	d.status = params.Status
	d.activeDeliveryID = params.ActiveDeliveryID
	d.locationFix = params.LocationFix
	d.stats = params.Stats
	d.ratings = make([]Rating, len(params.Ratings))
	copy(d.ratings, params.Ratings)
	d.emailVerified = params.EmailVerified
	d.phoneVerified = params.PhoneVerified
	d.documentsVerified = params.DocumentsVerified
	d.pushToken = params.PushToken
	d.isDeleted = params.IsDeleted
	d.deletedAt = params.DeletedAt

	return d, nil
}

// SetAvailable opts the driver in for dispatch (offline → available).
// Repeating the call while already available is a harmless no-op. A driver
// with an active delivery cannot opt in and gets a ConflictError.
//
// A missing location fix does not block the transition; the caller logs a
// warning instead, since the driver will simply not match proximity queries
// until the first ping arrives.
func (d *Driver) SetAvailable() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.isDeleted {
		return ErrDriverIsDeleted
	}
	if d.status == StatusOnDelivery {
		return errs.NewConflictError("set available", "driver has an active delivery")
	}

	d.status = StatusAvailable
	return nil
}

// AssignDelivery transitions the driver to on_delivery for the given order
// (available → on_delivery). Only the dispatcher calls this. Returns a
// ConflictError when the driver is not currently available, including the
// case of a driver already on a delivery.
func (d *Driver) AssignDelivery(orderID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	if d.isDeleted {
		return ErrDriverIsDeleted
	}
	if d.status != StatusAvailable {
		return errs.NewConflictError("assign delivery",
			"driver is not available (status is "+d.status.String()+")")
	}

	d.status = StatusOnDelivery
	d.activeDeliveryID = &orderID
	return nil
}

// CompleteDelivery records a finished delivery as one logical operation:
// the stats update (counters, earnings, running-average delivery time,
// lastDeliveryAt) and the on_delivery → available transition. Validation
// happens before any mutation, so a failed call changes nothing.
//
// When orderID is non-nil it must match the active delivery id; a mismatch
// (stale or duplicate completion callback) is a ConflictError.
func (d *Driver) CompleteDelivery(
	orderID *kernel.UUID,
	deliveryTimeMinutes, earnings float64,
	now time.Time,
) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status != StatusOnDelivery {
		return errs.NewConflictError("complete delivery", "driver has no active delivery")
	}
	if orderID != nil && !orderID.IsEqual(*d.activeDeliveryID) {
		return errs.NewConflictError("complete delivery",
			"order id does not match the active delivery")
	}

	if err := d.stats.RecordDelivery(deliveryTimeMinutes, earnings, now); err != nil {
		return err
	}

	d.status = StatusAvailable
	d.activeDeliveryID = nil
	return nil
}

// GoOffline signs the driver off (any → offline). The transition is
// unconditional: it clears the active delivery id and the push token
// regardless of the prior state. Used for driver sign-off and admin disable.
func (d *Driver) GoOffline() error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.status = StatusOffline
	d.activeDeliveryID = nil
	d.pushToken = ""
	return nil
}

// UpdateLocation overwrites the driver's location fix. The fix is applied
// all-or-nothing; a prior fix is fully replaced.
func (d *Driver) UpdateLocation(fix LocationFix) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := fix.Validate(); err != nil {
		return err
	}
	if d.isDeleted {
		return ErrDriverIsDeleted
	}

	d.locationFix = &fix
	return nil
}

// AddRating appends a rating to the history and folds it into the running
// rating average. Independent of delivery completion: a rating can arrive any
// time after an order referenced this driver. An order can be rated at most
// once per driver.
func (d *Driver) AddRating(orderID kernel.UUID, value int, comment string, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}

	for _, existing := range d.ratings {
		if existing.OrderID().IsEqual(orderID) {
			return errs.NewConflictError("add rating", "order is already rated")
		}
	}

	rating, err := NewRating(orderID, value, comment, now)
	if err != nil {
		return err
	}

	if err = d.stats.RecordRating(value); err != nil {
		return err
	}

	d.ratings = append(d.ratings, rating)
	return nil
}

// ResetPeriodCounters zeroes the period counters of the given kind.
// See Stats.ResetPeriod. Scheduled fleet-wide rollovers bypass the aggregate
// and run as a single bulk statement in the repository; this method is the
// single-driver path for callers that already hold the loaded aggregate.
func (d *Driver) ResetPeriodCounters(kind PeriodKind) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return d.stats.ResetPeriod(kind)
}

// SetPushToken stores the device token used by the external push notifier.
func (d *Driver) SetPushToken(token string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.isDeleted {
		return ErrDriverIsDeleted
	}

	d.pushToken = token
	return nil
}

// SetVerificationFlags applies an admin verification toggle.
func (d *Driver) SetVerificationFlags(emailVerified, phoneVerified, documentsVerified bool) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.emailVerified = emailVerified
	d.phoneVerified = phoneVerified
	d.documentsVerified = documentsVerified
	return nil
}

// MarkDeleted soft-deletes the driver. The record is never physically
// removed; it is forced offline with no active delivery, the push token and
// location are cleared, and the driver is excluded from all queries from
// this point on. Idempotent.
func (d *Driver) MarkDeleted(now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.isDeleted {
		return nil
	}

	deletedAt := now
	d.isDeleted = true
	d.deletedAt = &deletedAt
	d.status = StatusOffline
	d.activeDeliveryID = nil
	d.pushToken = ""
	d.locationFix = nil
	return nil
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// AuthID returns the stable external authentication id.
func (d *Driver) AuthID() string { return d.authID }

// Name returns the driver's name.
func (d *Driver) Name() string { return d.name }

// Email returns the driver's email.
func (d *Driver) Email() string { return d.email }

// Phone returns the driver's phone number, possibly empty.
func (d *Driver) Phone() string { return d.phone }

// Vehicle returns the driver's vehicle.
func (d *Driver) Vehicle() Vehicle { return d.vehicle }

// Status returns the current lifecycle status.
func (d *Driver) Status() Status { return d.status }

// ActiveDeliveryID returns the order id of the delivery in progress,
// or nil when the driver is not on a delivery.
func (d *Driver) ActiveDeliveryID() *kernel.UUID { return d.activeDeliveryID }

// LocationFix returns the latest location fix, or nil if none was reported.
func (d *Driver) LocationFix() *LocationFix { return d.locationFix }

// HasLocationFix reports whether a location fix is present.
func (d *Driver) HasLocationFix() bool { return d.locationFix != nil }

// Stats returns the driver's rolling performance stats.
func (d *Driver) Stats() Stats { return d.stats }

// Ratings returns a copy of the append-only rating history.
func (d *Driver) Ratings() []Rating {
	out := make([]Rating, len(d.ratings))
	copy(out, d.ratings)
	return out
}

// EmailVerified reports whether the email was verified by an admin.
func (d *Driver) EmailVerified() bool { return d.emailVerified }

// PhoneVerified reports whether the phone was verified by an admin.
func (d *Driver) PhoneVerified() bool { return d.phoneVerified }

// DocumentsVerified reports whether the documents were verified by an admin.
// Only documents-verified drivers are eligible for dispatch.
func (d *Driver) DocumentsVerified() bool { return d.documentsVerified }

// PushToken returns the stored device token, possibly empty.
func (d *Driver) PushToken() string { return d.pushToken }

// IsDeleted reports whether the driver is soft-deleted.
func (d *Driver) IsDeleted() bool { return d.isDeleted }

// DeletedAt returns the soft-delete time, or nil for live drivers.
func (d *Driver) DeletedAt() *time.Time { return d.deletedAt }

// Validate checks if the Driver was properly constructed via NewDriver or
// RestoreDriver. The zero value of Driver is invalid.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Driver) setAuthID(authID string) error {
	if authID == "" {
		return ErrAuthIDIsRequired
	}

	d.authID = authID
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

func (d *Driver) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	d.email = email
	return nil
}

func (d *Driver) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	d.vehicle = vehicle
	return nil
}
