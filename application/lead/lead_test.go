package lead_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	applead "github.com/muhammadheryan/lead-crm/application/lead"
	"github.com/muhammadheryan/lead-crm/constant"
	uploadmocks "github.com/muhammadheryan/lead-crm/mocks/application/upload"
	leadmocks "github.com/muhammadheryan/lead-crm/mocks/repository/lead"
	planmocks "github.com/muhammadheryan/lead-crm/mocks/repository/plan"
	usermocks "github.com/muhammadheryan/lead-crm/mocks/repository/user"
	rabbitmocks "github.com/muhammadheryan/lead-crm/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/lead-crm/model"
	leadrepo "github.com/muhammadheryan/lead-crm/repository/lead"
	"github.com/muhammadheryan/lead-crm/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/lead-crm/utils/errors"
	"github.com/muhammadheryan/lead-crm/utils/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	admin      = model.Identity{ID: 1, Role: constant.RoleAdmin, ApproveStatus: constant.ApproveApproved}
	agent      = model.Identity{ID: 2, Role: constant.RoleAgent, ApproveStatus: constant.ApproveApproved}
	freelancer = model.Identity{ID: 3, Role: constant.RoleFreelancer, ApproveStatus: constant.ApproveApproved}
	stranger   = model.Identity{ID: 4, Role: constant.RoleFreelancer, ApproveStatus: constant.ApproveApproved}
)

type fields struct {
	leadRepo  *leadmocks.LeadRepository
	userRepo  *usermocks.UserRepository
	planRepo  *planmocks.PlanRepository
	uploadApp *uploadmocks.UploadApp
	publisher *rabbitmocks.Publisher
}

func newFields(t *testing.T) fields {
	return fields{
		leadRepo:  leadmocks.NewLeadRepository(t),
		userRepo:  usermocks.NewUserRepository(t),
		planRepo:  planmocks.NewPlanRepository(t),
		uploadApp: uploadmocks.NewUploadApp(t),
		publisher: rabbitmocks.NewPublisher(t),
	}
}

func (f fields) app() applead.LeadApp {
	return applead.NewLeadApp(f.leadRepo, f.userRepo, f.planRepo, f.uploadApp, f.publisher)
}

func strPtr(s string) *string { return &s }

func u64Ptr(v uint64) *uint64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T (%v), want CustomError", err, err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func ownedLead() *model.LeadEntity {
	return &model.LeadEntity{
		ID:           10,
		Name:         "Acme",
		Email:        "acme@example.com",
		ProcessingID: "AbCd1234",
		Level:        constant.LeadLevelOne,
		Remarks:      strPtr("first call"),
		Attachment:   strPtr("visit.jpg"),
		Hours:        strPtr("2"),
		CreatedBy:    u64Ptr(freelancer.ID),
	}
}

func TestLeadApp_LevelOne(t *testing.T) {
	req := &model.LevelOneRequest{
		Name:        "Acme",
		Number:      "0800",
		CompanyName: "Acme LLC",
		Email:       "acme@example.com",
	}
	dupKey := func(key string) error {
		return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'leads." + key + "'"}
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				f.leadRepo.On("ExistsEmail", mock.Anything, "acme@example.com").Return(false, nil).Once()
				f.leadRepo.On("ExistsProcessingID", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
				f.leadRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *model.LeadEntity) bool {
					return l.Level == constant.LeadLevelOne &&
						len(l.ProcessingID) == constant.ProcessingIDLength &&
						*l.CreatedBy == freelancer.ID &&
						*l.CompanyName == "Acme LLC"
				})).Return(func(_ context.Context, l *model.LeadEntity) (*model.LeadEntity, error) {
					out := *l
					out.ID = 10
					return &out, nil
				}).Once()
			},
		},
		{
			name: "success: taken candidate ids are re-rolled",
			mockCall: func(f fields) {
				f.leadRepo.On("ExistsEmail", mock.Anything, "acme@example.com").Return(false, nil).Once()
				f.leadRepo.On("ExistsProcessingID", mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Twice()
				f.leadRepo.On("ExistsProcessingID", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
				f.leadRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).
					Return(&model.LeadEntity{ID: 10, ProcessingID: "AbCd1234"}, nil).Once()
			},
		},
		{
			name: "success: insert race on processing id retries",
			mockCall: func(f fields) {
				f.leadRepo.On("ExistsEmail", mock.Anything, "acme@example.com").Return(false, nil).Once()
				f.leadRepo.On("ExistsProcessingID", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Twice()
				f.leadRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).
					Return(nil, dupKey(leadrepo.KeyProcessingID)).Once()
				f.leadRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).
					Return(&model.LeadEntity{ID: 10, ProcessingID: "AbCd1234"}, nil).Once()
			},
		},
		{
			name: "error: email already used by a live lead",
			mockCall: func(f fields) {
				f.leadRepo.On("ExistsEmail", mock.Anything, "acme@example.com").Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrLeadEmailExists,
		},
		{
			name: "error: insert race on email",
			mockCall: func(f fields) {
				f.leadRepo.On("ExistsEmail", mock.Anything, "acme@example.com").Return(false, nil).Once()
				f.leadRepo.On("ExistsProcessingID", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
				f.leadRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).
					Return(nil, dupKey(leadrepo.KeyEmail)).Once()
			},
			wantErr: true,
			errCode: constant.ErrLeadEmailExists,
		},
		{
			name: "error: every insert collides",
			mockCall: func(f fields) {
				f.leadRepo.On("ExistsEmail", mock.Anything, "acme@example.com").Return(false, nil).Once()
				f.leadRepo.On("ExistsProcessingID", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
				f.leadRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).
					Return(nil, dupKey(leadrepo.KeyProcessingID))
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.leadRepo.On("ExistsEmail", mock.Anything, "acme@example.com").Return(false, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().LevelOne(context.Background(), freelancer, req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LevelOne() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, uint64(10), got.LeadID)
			assert.Equal(t, 2, got.Step)
			assert.Len(t, got.ProcessingID, constant.ProcessingIDLength)
		})
	}
}

func TestLeadApp_LevelOne_ConcurrentUniqueness(t *testing.T) {
	repo := newMemLeadRepository()
	f := newFields(t)
	app := applead.NewLeadApp(repo, f.userRepo, f.planRepo, f.uploadApp, f.publisher)

	const workers = 32
	var wg sync.WaitGroup
	results := make([]*model.LevelOneResponse, workers)
	errs := make([]error, workers)

	// half the callers race on one shared email
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("lead%d@example.com", i)
			if i%2 == 0 {
				email = "shared@example.com"
			}
			results[i], errs[i] = app.LevelOne(context.Background(), freelancer, &model.LevelOneRequest{
				Name:        "Lead",
				Number:      "0800",
				CompanyName: "Co",
				Email:       email,
			})
		}(i)
	}
	wg.Wait()

	sharedWinners := 0
	seen := map[string]bool{}
	for i := 0; i < workers; i++ {
		if i%2 == 0 {
			if errs[i] == nil {
				sharedWinners++
			} else {
				assertErrCode(t, errs[i], constant.ErrLeadEmailExists)
				continue
			}
		} else {
			require.NoError(t, errs[i])
		}
		require.False(t, seen[results[i].ProcessingID], "processing id %s issued twice", results[i].ProcessingID)
		seen[results[i].ProcessingID] = true
	}
	assert.Equal(t, 1, sharedWinners)

	leads, total, _ := repo.List(context.Background(), nil)
	assert.Equal(t, int64(workers/2+1), total)
	assert.Len(t, leads, workers/2+1)
}

func TestLeadApp_LevelTwo(t *testing.T) {
	t.Run("success: stamps level two", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.leadRepo.On("Update", mock.Anything, mock.MatchedBy(func(l *model.LeadEntity) bool {
			return l.Level == constant.LeadLevelTwo && *l.SomeText == "details" && *l.UpdatedBy == freelancer.ID
		})).Return(nil).Once()

		got, err := f.app().LevelTwo(context.Background(), freelancer, &model.LevelTwoRequest{LeadID: 10, SomeText: "details"})
		require.NoError(t, err)
		assert.Equal(t, &model.LevelTwoResponse{LeadID: 10, Step: 3}, got)
	})

	t.Run("level regression is allowed and logged", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		defer logger.Replace(zap.New(core))()

		lead := ownedLead()
		lead.Level = constant.LeadLevelThree
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(lead, nil).Once()
		f.leadRepo.On("Update", mock.Anything, mock.MatchedBy(func(l *model.LeadEntity) bool {
			return l.Level == constant.LeadLevelTwo
		})).Return(nil).Once()

		_, err := f.app().LevelTwo(context.Background(), agent, &model.LevelTwoRequest{LeadID: 10, SomeText: "again"})
		require.NoError(t, err)
		require.Equal(t, 1, logs.FilterMessage("[LevelTwo] lead level regressed").Len())
	})

	t.Run("error: lead missing", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		_, err := f.app().LevelTwo(context.Background(), freelancer, &model.LevelTwoRequest{LeadID: 99, SomeText: "x"})
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("error: another freelancer's lead", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()

		_, err := f.app().LevelTwo(context.Background(), stranger, &model.LevelTwoRequest{LeadID: 10, SomeText: "x"})
		assertErrCode(t, err, constant.ErrForbidden)
	})
}

func TestLeadApp_LevelThree(t *testing.T) {
	crUpload := &model.FileUpload{Filename: "cr.pdf", Size: 5, Content: []byte("%PDF-")}

	t.Run("absent files keep stored paths and file_path takes the first", func(t *testing.T) {
		lead := ownedLead()
		lead.Level = constant.LeadLevelTwo
		lead.TLFile = strPtr("leads/tl/old.png")

		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(lead, nil).Once()
		f.uploadApp.On("CheckDocument", "cr_file", crUpload).Return(nil).Once()
		f.uploadApp.On("StoreDocument", mock.Anything, "leads/cr", "cr_file", crUpload).Return("leads/cr/new.pdf", nil).Once()
		f.leadRepo.On("Update", mock.Anything, mock.MatchedBy(func(l *model.LeadEntity) bool {
			return l.Level == constant.LeadLevelThree &&
				*l.CRFile == "leads/cr/new.pdf" &&
				l.CCFile == nil &&
				*l.TLFile == "leads/tl/old.png" &&
				*l.FilePath == "leads/cr/new.pdf"
		})).Return(nil).Once()

		got, err := f.app().LevelThree(context.Background(), freelancer, &model.LevelThreeRequest{LeadID: 10, CRFile: crUpload})
		require.NoError(t, err)
		assert.Equal(t, uint64(10), got.LeadID)
	})

	t.Run("no files falls back to stored tl file", func(t *testing.T) {
		lead := ownedLead()
		lead.TLFile = strPtr("leads/tl/old.png")

		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(lead, nil).Once()
		f.leadRepo.On("Update", mock.Anything, mock.MatchedBy(func(l *model.LeadEntity) bool {
			return *l.FilePath == "leads/tl/old.png" && l.Level == constant.LeadLevelThree
		})).Return(nil).Once()

		_, err := f.app().LevelThree(context.Background(), freelancer, &model.LevelThreeRequest{LeadID: 10})
		require.NoError(t, err)
	})

	t.Run("error: a rejected later document stores nothing", func(t *testing.T) {
		tlUpload := &model.FileUpload{Filename: "tl.exe", Size: 2, Content: []byte("MZ")}

		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.uploadApp.On("CheckDocument", "cr_file", crUpload).Return(nil).Once()
		f.uploadApp.On("CheckDocument", "tl_file", tlUpload).
			Return(cerr.SetFieldError(constant.ErrInvalidFile, "tl_file", "bad")).Once()

		_, err := f.app().LevelThree(context.Background(), freelancer,
			&model.LevelThreeRequest{LeadID: 10, CRFile: crUpload, TLFile: tlUpload})
		assertErrCode(t, err, constant.ErrInvalidFile)
		f.uploadApp.AssertNotCalled(t, "StoreDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.leadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("error: failed store removes earlier documents", func(t *testing.T) {
		ccUpload := &model.FileUpload{Filename: "cc.pdf", Size: 5, Content: []byte("%PDF-")}

		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.uploadApp.On("CheckDocument", mock.Anything, mock.Anything).Return(nil).Twice()
		f.uploadApp.On("StoreDocument", mock.Anything, "leads/cr", "cr_file", crUpload).Return("leads/cr/new.pdf", nil).Once()
		f.uploadApp.On("StoreDocument", mock.Anything, "leads/cc", "cc_file", ccUpload).Return("", errors.New("disk full")).Once()
		f.uploadApp.On("RemoveDocuments", mock.Anything, []string{"leads/cr/new.pdf"}).Once()

		_, err := f.app().LevelThree(context.Background(), freelancer,
			&model.LevelThreeRequest{LeadID: 10, CRFile: crUpload, CCFile: ccUpload})
		require.Error(t, err)
		f.leadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("error: failed update removes stored documents", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.uploadApp.On("CheckDocument", "cr_file", crUpload).Return(nil).Once()
		f.uploadApp.On("StoreDocument", mock.Anything, "leads/cr", "cr_file", crUpload).Return("leads/cr/new.pdf", nil).Once()
		f.leadRepo.On("Update", mock.Anything, mock.Anything).Return(errors.New("deadlock")).Once()
		f.uploadApp.On("RemoveDocuments", mock.Anything, []string{"leads/cr/new.pdf"}).Once()

		_, err := f.app().LevelThree(context.Background(), freelancer, &model.LevelThreeRequest{LeadID: 10, CRFile: crUpload})
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestLeadApp_CreateLead(t *testing.T) {
	f := newFields(t)
	req := &model.CreateLeadRequest{
		LeadType:    constant.LeadTypeMobileServices,
		ServiceType: strPtr("Postpaid"),
		Name:        "Acme",
		Email:       "acme@example.com",
		PhoneNumber: "0800",
	}
	f.leadRepo.On("ExistsEmail", mock.Anything, "acme@example.com").Return(false, nil).Once()
	f.leadRepo.On("ExistsProcessingID", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
	f.leadRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *model.LeadEntity) bool {
		return *l.LeadType == constant.LeadTypeMobileServices && *l.ServiceType == "Postpaid" &&
			*l.PhoneNumber == "0800" && *l.CreatedBy == agent.ID && l.ProcessingID != ""
	})).Return(func(_ context.Context, l *model.LeadEntity) (*model.LeadEntity, error) {
		out := *l
		out.ID = 11
		return &out, nil
	}).Once()

	got, err := f.app().CreateLead(context.Background(), agent, req)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), got.ID)
	assert.Len(t, got.ProcessingID, constant.ProcessingIDLength)
}

func TestLeadApp_ListLeads(t *testing.T) {
	tests := []struct {
		name       string
		identity   model.Identity
		wantFilter *model.LeadFilter
	}{
		{name: "freelancer sees own leads", identity: freelancer, wantFilter: &model.LeadFilter{CreatedBy: freelancer.ID}},
		{name: "agent sees all", identity: agent, wantFilter: &model.LeadFilter{}},
		{name: "admin sees all", identity: admin, wantFilter: &model.LeadFilter{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.leadRepo.On("List", mock.Anything, tt.wantFilter).
				Return([]model.LeadEntity{*ownedLead()}, int64(1), nil).Once()

			got, err := f.app().ListLeads(context.Background(), tt.identity)
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.Total)
			assert.Len(t, got.Leads, 1)
		})
	}
}

func TestLeadApp_ListLeadsByLevelAndType(t *testing.T) {
	t.Run("level filter keeps ownership rule", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("List", mock.Anything, &model.LeadFilter{CreatedBy: freelancer.ID, Level: "2"}).
			Return([]model.LeadEntity{}, int64(0), nil).Once()

		got, err := f.app().ListLeadsByLevel(context.Background(), freelancer, "2")
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Total)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := newFields(t).app().ListLeadsByLevel(context.Background(), agent, "4")
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})

	t.Run("type listing is admin only", func(t *testing.T) {
		_, err := newFields(t).app().ListLeadsByType(context.Background(), agent, applead.TypeOutsourcing)
		assertErrCode(t, err, constant.ErrForbidden)
	})

	t.Run("mobile services", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("List", mock.Anything, &model.LeadFilter{LeadType: constant.LeadTypeMobileServices}).
			Return([]model.LeadEntity{}, int64(0), nil).Once()

		_, err := f.app().ListLeadsByType(context.Background(), admin, applead.TypeMobileServices)
		require.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := newFields(t).app().ListLeadsByType(context.Background(), admin, "retail")
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestLeadApp_GetLead(t *testing.T) {
	t.Run("detail resolves creator agent and plan", func(t *testing.T) {
		lead := ownedLead()
		lead.AgentID = u64Ptr(agent.ID)
		lead.PlanID = u64Ptr(5)

		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(lead, nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: freelancer.ID}).
			Return(&model.UserEntity{ID: freelancer.ID, Firstname: strPtr("Free"), Role: constant.RoleFreelancer}, nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: agent.ID}).
			Return(&model.UserEntity{ID: agent.ID, Name: strPtr("Agent"), Role: constant.RoleAgent}, nil).Once()
		f.planRepo.On("GetByID", mock.Anything, uint64(5)).
			Return(&model.PlanEntity{ID: 5, PlanName: "Gold", Price: decimal.NewFromInt(100)}, nil).Once()

		got, err := f.app().GetLead(context.Background(), freelancer, 10)
		require.NoError(t, err)
		assert.Equal(t, "Free", got.Creator.Name)
		assert.Equal(t, "Agent", got.Agent.Name)
		assert.Equal(t, "Gold", got.Plan.PlanName)
	})

	t.Run("freelancer reading another's lead is forbidden, not missing", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()

		_, err := f.app().GetLead(context.Background(), stranger, 10)
		assertErrCode(t, err, constant.ErrForbidden)
	})

	t.Run("missing lead", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(nil, nil).Once()

		_, err := f.app().GetLead(context.Background(), stranger, 10)
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestLeadApp_UpdateVisit(t *testing.T) {
	tests := []struct {
		name     string
		identity model.Identity
		req      *model.UpdateVisitRequest
		mockCall func(f fields)
		check    func(t *testing.T, got *model.LeadEntity)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "omitted remarks and attachment keep prior values",
			identity: agent,
			req:      &model.UpdateVisitRequest{StageMovement: "Meeting", Disposition: constant.DispositionAnswered},
			mockCall: func(f fields) {
				f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
				f.leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).Return(nil).Once()
			},
			check: func(t *testing.T, got *model.LeadEntity) {
				assert.Equal(t, "Meeting", *got.StageMovement)
				assert.Equal(t, constant.DispositionAnswered, *got.Disposition)
				assert.Equal(t, "first call", *got.Remarks)
				assert.Equal(t, "visit.jpg", *got.Attachment)
				assert.Equal(t, agent.ID, *got.UpdatedBy)
			},
		},
		{
			name:     "supplied remarks replace prior values",
			identity: admin,
			req:      &model.UpdateVisitRequest{StageMovement: "Meeting", Disposition: constant.DispositionCallback, Remarks: strPtr("call later")},
			mockCall: func(f fields) {
				f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
				f.leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).Return(nil).Once()
			},
			check: func(t *testing.T, got *model.LeadEntity) {
				assert.Equal(t, "call later", *got.Remarks)
				assert.Equal(t, "visit.jpg", *got.Attachment)
			},
		},
		{
			name:     "freelancer cannot update even their own lead",
			identity: freelancer,
			req:      &model.UpdateVisitRequest{StageMovement: "Meeting", Disposition: constant.DispositionAnswered},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrForbidden,
		},
		{
			name:     "missing lead",
			identity: agent,
			req:      &model.UpdateVisitRequest{StageMovement: "Meeting", Disposition: constant.DispositionAnswered},
			mockCall: func(f fields) {
				f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().UpdateVisit(context.Background(), tt.identity, 10, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateVisit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			tt.check(t, got)
		})
	}
}

func TestLeadApp_UpdateFollowUp(t *testing.T) {
	f := newFields(t)
	lead := ownedLead()
	lead.AgentID = u64Ptr(agent.ID)
	f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(lead, nil).Once()
	f.leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).Return(nil).Once()
	due := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	f.publisher.On("PublishFollowUpDue", mock.Anything, rabbitmq.FollowUpDueMessage{
		LeadID:       10,
		ProcessingID: "AbCd1234",
		AgentID:      u64Ptr(agent.ID),
		DueAt:        due,
	}).Return(errors.New("broker down")).Once()

	got, err := f.app().UpdateFollowUp(context.Background(), agent, 10, &model.UpdateFollowUpRequest{NextFollowUpDate: "2026-05-20"})
	require.NoError(t, err)
	assert.Equal(t, timePtr(due), got.NextFollowUpDate)
	assert.Equal(t, "2", *got.Hours)
	assert.Equal(t, "first call", *got.Remarks)
}

func TestLeadApp_ChangeStatus(t *testing.T) {
	t.Run("update change status", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).Return(nil).Once()

		got, err := f.app().UpdateChangeStatus(context.Background(), agent, 10, &model.ChangeStatusRequest{ChangeStatus: "Interested"})
		require.NoError(t, err)
		assert.Equal(t, "Interested", *got.ChangeStatus)
		assert.Nil(t, got.PlanID)
	})

	t.Run("agent change status records plan", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.planRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.PlanEntity{ID: 5}, nil).Once()
		f.leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).Return(nil).Once()

		got, err := f.app().ChangeStatusAgent(context.Background(), agent, 10, &model.ChangeStatusAgentRequest{ChangeStatus: "Sold", PlanID: 5})
		require.NoError(t, err)
		assert.Equal(t, "Sold", *got.ChangeStatus)
		assert.Equal(t, uint64(5), *got.PlanID)
	})

	t.Run("agent change status with unknown plan", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.planRepo.On("GetByID", mock.Anything, uint64(6)).Return(nil, nil).Once()

		_, err := f.app().ChangeStatusAgent(context.Background(), agent, 10, &model.ChangeStatusAgentRequest{ChangeStatus: "Sold", PlanID: 6})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestLeadApp_UpdateLeadStatus(t *testing.T) {
	req := &model.UpdateLeadStatusRequest{AgentID: agent.ID, ChangeStatus: "Assigned"}

	t.Run("admin assigns and publishes", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: agent.ID, Role: constant.RoleAgent}).
			Return(&model.UserEntity{ID: agent.ID, Role: constant.RoleAgent}, nil).Once()
		f.leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.LeadEntity")).Return(nil).Once()
		f.publisher.On("PublishLeadAssigned", mock.Anything, rabbitmq.LeadAssignedMessage{
			LeadID:       10,
			ProcessingID: "AbCd1234",
			AgentID:      agent.ID,
			AssignedBy:   admin.ID,
			ChangeStatus: "Assigned",
		}).Return(nil).Once()

		got, err := f.app().UpdateLeadStatus(context.Background(), admin, 10, req)
		require.NoError(t, err)
		assert.Equal(t, agent.ID, *got.AgentID)
		assert.Equal(t, admin.ID, *got.UpdatedBy)
	})

	t.Run("agent cannot assign", func(t *testing.T) {
		_, err := newFields(t).app().UpdateLeadStatus(context.Background(), agent, 10, req)
		assertErrCode(t, err, constant.ErrForbidden)
	})

	t.Run("unknown agent", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: agent.ID, Role: constant.RoleAgent}).Return(nil, nil).Once()

		_, err := f.app().UpdateLeadStatus(context.Background(), admin, 10, req)
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestLeadApp_DeleteLead(t *testing.T) {
	t.Run("admin soft deletes with deleted_by", func(t *testing.T) {
		f := newFields(t)
		f.leadRepo.On("GetByID", mock.Anything, uint64(10)).Return(ownedLead(), nil).Once()
		f.leadRepo.On("SoftDelete", mock.Anything, uint64(10), admin.ID).Return(nil).Once()

		require.NoError(t, f.app().DeleteLead(context.Background(), admin, 10))
	})

	t.Run("agent is forbidden", func(t *testing.T) {
		assertErrCode(t, newFields(t).app().DeleteLead(context.Background(), agent, 10), constant.ErrForbidden)
	})

	t.Run("deleted lead disappears from listings and frees its email", func(t *testing.T) {
		repo := newMemLeadRepository()
		f := newFields(t)
		app := applead.NewLeadApp(repo, f.userRepo, f.planRepo, f.uploadApp, f.publisher)
		req := &model.LevelOneRequest{Name: "Acme", Number: "1", CompanyName: "Co", Email: "acme@example.com"}

		first, err := app.LevelOne(context.Background(), freelancer, req)
		require.NoError(t, err)
		require.NoError(t, app.DeleteLead(context.Background(), admin, first.LeadID))

		list, err := app.ListLeads(context.Background(), freelancer)
		require.NoError(t, err)
		assert.Equal(t, int64(0), list.Total)

		second, err := app.LevelOne(context.Background(), freelancer, req)
		require.NoError(t, err)
		assert.NotEqual(t, first.ProcessingID, second.ProcessingID)
	})
}
