// Package firestore implements the family, code and device repositories on
// Cloud Firestore.
package firestore

import (
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

// Collection names.
const (
	familiesCollection     = "families"
	companionsCollection   = "companions"
	pendingCodesCollection = "pendingCodes"
	devicesCollection      = "devices"
)

type sleepWindowDoc struct {
	Enabled          bool  `firestore:"enabled"`
	StartMinuteOfDay int   `firestore:"startMinuteOfDay"`
	EndMinuteOfDay   int   `firestore:"endMinuteOfDay"`
	ActiveWeekdays   []int `firestore:"activeWeekdays"`
}

type settingsDoc struct {
	MonitoringEnabled   bool            `firestore:"monitoringEnabled"`
	AlertThresholdHours int             `firestore:"alertThresholdHours"`
	SleepWindow         *sleepWindowDoc `firestore:"sleepWindow"`
	Timezone            string          `firestore:"timezone,omitempty"`
}

type locationDoc struct {
	Latitude  float64   `firestore:"latitude"`
	Longitude float64   `firestore:"longitude"`
	At        time.Time `firestore:"at"`
}

type alertDoc struct {
	IsActive      bool       `firestore:"isActive"`
	RaisedAt      *time.Time `firestore:"raisedAt"`
	HoursInactive *int       `firestore:"hoursInactive"`
	ClearedAt     *time.Time `firestore:"clearedAt"`
}

// familyDoc is stored at families/{id}.
type familyDoc struct {
	ConnectionCode  string       `firestore:"connectionCode"`
	SubjectName     string       `firestore:"subjectName"`
	RecipientTokens []string     `firestore:"recipientTokens,omitempty"`
	Settings        settingsDoc  `firestore:"settings"`
	LastActivityAt  *time.Time   `firestore:"lastActivityAt"`
	LastLocation    *locationDoc `firestore:"lastLocation"`
	AlertState      alertDoc     `firestore:"alertState"`
	ApprovalState   string       `firestore:"approvalState"`
	PairedAt        *time.Time   `firestore:"pairedAt"`
	CreatedAt       time.Time    `firestore:"createdAt"`
	UpdatedAt       time.Time    `firestore:"updatedAt"`
}

// companionDoc is stored at families/{id}/companions/{deviceId}.
type companionDoc struct {
	Token    string `firestore:"token"`
	Approved bool   `firestore:"approved"`
}

// pendingCodeDoc is stored at pendingCodes/{code}.
type pendingCodeDoc struct {
	FamilyID  string    `firestore:"familyId"`
	CreatedAt time.Time `firestore:"createdAt"`
	ExpiresAt time.Time `firestore:"expiresAt"`
}

// deviceDoc is stored at devices/{id}.
type deviceDoc struct {
	ConnectionCode string    `firestore:"connectionCode"`
	FamilyID       string    `firestore:"familyId"`
	DeviceID       string    `firestore:"deviceId"`
	Token          string    `firestore:"fcmToken"`
	Platform       string    `firestore:"platform"`
	CreatedAt      time.Time `firestore:"createdAt"`
	UpdatedAt      time.Time `firestore:"updatedAt"`
}

func toSettingsDoc(s entity.MonitorSettings) settingsDoc {
	doc := settingsDoc{
		MonitoringEnabled:   s.MonitoringEnabled,
		AlertThresholdHours: s.AlertThresholdHours,
		Timezone:            s.Timezone,
	}
	if s.SleepWindow != nil {
		doc.SleepWindow = &sleepWindowDoc{
			Enabled:          s.SleepWindow.Enabled,
			StartMinuteOfDay: s.SleepWindow.StartMinuteOfDay,
			EndMinuteOfDay:   s.SleepWindow.EndMinuteOfDay,
			ActiveWeekdays:   s.SleepWindow.ActiveWeekdays,
		}
	}

	return doc
}

func (d settingsDoc) toDomain() entity.MonitorSettings {
	settings := entity.MonitorSettings{
		MonitoringEnabled:   d.MonitoringEnabled,
		AlertThresholdHours: d.AlertThresholdHours,
		Timezone:            d.Timezone,
	}
	if d.SleepWindow != nil {
		settings.SleepWindow = &entity.SleepWindow{
			Enabled:          d.SleepWindow.Enabled,
			StartMinuteOfDay: d.SleepWindow.StartMinuteOfDay,
			EndMinuteOfDay:   d.SleepWindow.EndMinuteOfDay,
			ActiveWeekdays:   d.SleepWindow.ActiveWeekdays,
		}
	}

	return settings
}

func toFamilyDoc(f *entity.Family) *familyDoc {
	doc := &familyDoc{
		ConnectionCode:  f.ConnectionCode,
		SubjectName:     f.SubjectName,
		RecipientTokens: f.RecipientTokens,
		Settings:        toSettingsDoc(f.Settings),
		LastActivityAt:  f.LastActivityAt,
		AlertState: alertDoc{
			IsActive:      f.AlertState.IsActive,
			RaisedAt:      f.AlertState.RaisedAt,
			HoursInactive: f.AlertState.HoursInactive,
			ClearedAt:     f.AlertState.ClearedAt,
		},
		ApprovalState: string(f.ApprovalState),
		PairedAt:      f.PairedAt,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
	if f.LastLocation != nil {
		doc.LastLocation = &locationDoc{
			Latitude:  f.LastLocation.Latitude,
			Longitude: f.LastLocation.Longitude,
			At:        f.LastLocation.At,
		}
	}

	return doc
}

func (d *familyDoc) toDomain(id uuid.UUID) *entity.Family {
	family := &entity.Family{
		ID:              id,
		ConnectionCode:  d.ConnectionCode,
		SubjectName:     d.SubjectName,
		RecipientTokens: d.RecipientTokens,
		Settings:        d.Settings.toDomain(),
		LastActivityAt:  d.LastActivityAt,
		AlertState: entity.AlertState{
			IsActive:      d.AlertState.IsActive,
			RaisedAt:      d.AlertState.RaisedAt,
			HoursInactive: d.AlertState.HoursInactive,
			ClearedAt:     d.AlertState.ClearedAt,
		},
		ApprovalState: entity.ApprovalState(d.ApprovalState),
		PairedAt:      d.PairedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if family.ApprovalState == "" {
		family.ApprovalState = entity.ApprovalUnset
	}
	if d.LastLocation != nil {
		family.LastLocation = &entity.Location{
			Latitude:  d.LastLocation.Latitude,
			Longitude: d.LastLocation.Longitude,
			At:        d.LastLocation.At,
		}
	}

	return family
}

func decodeFamily(snap *fs.DocumentSnapshot) (*entity.Family, error) {
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "family document id %q", snap.Ref.ID)
	}

	var doc familyDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode family %s", snap.Ref.ID)
	}

	return doc.toDomain(id), nil
}

func toPendingCodeDoc(p *entity.PendingCode) *pendingCodeDoc {
	return &pendingCodeDoc{
		FamilyID:  p.FamilyID.String(),
		CreatedAt: p.CreatedAt,
		ExpiresAt: p.ExpiresAt,
	}
}

func decodePendingCode(snap *fs.DocumentSnapshot) (*entity.PendingCode, error) {
	var doc pendingCodeDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode pending code %s", snap.Ref.ID)
	}

	familyID, err := uuid.Parse(doc.FamilyID)
	if err != nil {
		return nil, errors.Wrapf(err, "pending code %s family id", snap.Ref.ID)
	}

	return &entity.PendingCode{
		Code:      snap.Ref.ID,
		FamilyID:  familyID,
		CreatedAt: doc.CreatedAt,
		ExpiresAt: doc.ExpiresAt,
	}, nil
}

func toDeviceDoc(d *entity.Device) *deviceDoc {
	return &deviceDoc{
		ConnectionCode: d.ConnectionCode,
		FamilyID:       d.FamilyID.String(),
		DeviceID:       d.DeviceID,
		Token:          d.Token,
		Platform:       d.Platform,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func decodeDevice(snap *fs.DocumentSnapshot) (*entity.Device, error) {
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "device document id %q", snap.Ref.ID)
	}

	var doc deviceDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode device %s", snap.Ref.ID)
	}

	// Registrations written by older clients may lack the family reference.
	familyID, _ := uuid.Parse(doc.FamilyID)

	return &entity.Device{
		ID:             id,
		ConnectionCode: doc.ConnectionCode,
		FamilyID:       familyID,
		DeviceID:       doc.DeviceID,
		Token:          doc.Token,
		Platform:       doc.Platform,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}, nil
}
