package models

type HiringStatus string
type MeetingType string
type MeetingStatus string

const (
	HiringStatusNotHiring      HiringStatus = "not_hiring"
	HiringStatusHiring         HiringStatus = "hiring"
	HiringStatusActivelyHiring HiringStatus = "actively_hiring"

	MeetingTypeVirtual  MeetingType = "virtual"
	MeetingTypeInPerson MeetingType = "in_person"

	MeetingStatusPending MeetingStatus = "pending"
)

func (s HiringStatus) Valid() bool {
	switch s {
	case HiringStatusNotHiring, HiringStatusHiring, HiringStatusActivelyHiring:
		return true
	}
	return false
}

func (t MeetingType) Valid() bool {
	return t == MeetingTypeVirtual || t == MeetingTypeInPerson
}
