package serviceImp

import (
	"errors"

	"gorm.io/gorm"

	"agricrm/entities"
	frepo "agricrm/pkg/farmer/repository"
	"agricrm/pkg/lead/repository"
	"agricrm/pkg/lead/service"
	"agricrm/pkg/pipeline"
)

var (
	ErrMissingFarmer = errors.New("lead needs a farmer_id or a farmer name and phone")
	ErrBadStatus     = errors.New("status must be one of the seven pipeline stages")
)

type leadSvc struct {
	leads   repository.LeadRepository
	farmers frepo.FarmerRepository
}

func New(leads repository.LeadRepository, farmers frepo.FarmerRepository) service.LeadService {
	return &leadSvc{leads: leads, farmers: farmers}
}

// CreateLead resolves the farmer first: an explicit farmer_id wins,
// otherwise the phone number is looked up and a new farmer registered when
// no match exists. Farmer and lead are two independent writes with no
// shared transaction; if the lead insert fails after the farmer insert
// succeeded, the leadless farmer is left in place and is legal state.
func (s *leadSvc) CreateLead(in service.NewLead) (*entities.Lead, error) {
	farmerID := in.FarmerID
	if farmerID == 0 {
		if in.FarmerName == "" || in.Phone == "" {
			return nil, ErrMissingFarmer
		}
		f, err := s.farmers.FindByPhone(in.Phone)
		switch {
		case err == nil:
			farmerID = f.FarmerID
		case errors.Is(err, gorm.ErrRecordNotFound):
			nf := &entities.Farmer{
				Name:     in.FarmerName,
				Phone:    in.Phone,
				Village:  in.Village,
				District: in.District,
				CropType: in.CropType,
				Acreage:  in.Acreage,
			}
			if err := s.farmers.Create(nf); err != nil {
				return nil, err
			}
			farmerID = nf.FarmerID
		default:
			return nil, err
		}
	}

	status := in.Status
	if status == "" {
		status = string(pipeline.StageNew)
	}
	if !pipeline.Valid(pipeline.Stage(status)) {
		return nil, ErrBadStatus
	}

	l := &entities.Lead{
		FarmerID: farmerID,
		Status:   status,
		Source:   in.Source,
		Notes:    in.Notes,
	}
	if err := s.leads.Create(l); err != nil {
		return nil, err
	}
	return s.leads.FindByID(l.LeadID)
}

// UpdateStatus accepts any of the seven stages from any other; backward
// moves and jumps are deliberate (leads regress and get fast-tracked).
// There is no transition guard beyond the literal value check.
func (s *leadSvc) UpdateStatus(leadID uint, status string) (*entities.Lead, error) {
	if !pipeline.Valid(pipeline.Stage(status)) {
		return nil, ErrBadStatus
	}
	if err := s.leads.UpdateStatus(leadID, status); err != nil {
		return nil, err
	}
	return s.leads.FindByID(leadID)
}
