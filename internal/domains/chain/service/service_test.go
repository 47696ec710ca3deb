package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	chainMocks "lodge/internal/domains/chain/mocks"
	"lodge/internal/domains/chain/model"
	"lodge/internal/domains/chain/model/dto"
	"lodge/internal/domains/chain/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

func TestChainService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := chainMocks.NewMockChain(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateChainRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateChainRequest{
				Name:          "Northern Lodges",
				HeadOffice:    "100 Main St, Montreal",
				ContactEmails: []string{"office@northernlodges.test"},
				ContactPhones: []string{"+1-514-555-0100"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateChainRequest{
				Name:          "Northern Lodges",
				HeadOffice:    "100 Main St, Montreal",
				ContactEmails: []string{"office@northernlodges.test"},
				ContactPhones: []string{"+1-514-555-0100"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "store unreachable surfaces 503",
			req: dto.CreateChainRequest{
				Name:          "Northern Lodges",
				HeadOffice:    "100 Main St, Montreal",
				ContactEmails: []string{"office@northernlodges.test"},
				ContactPhones: []string{"+1-514-555-0100"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.ServiceUnavailable("store unreachable, cannot insert chain"))
			},
			wantErr:  true,
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChainService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := chainMocks.NewMockChain(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	chain := model.Chain{
		ID:         "test-id",
		Name:       "Northern Lodges",
		HeadOffice: "100 Main St, Montreal",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "successful get",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "test-id").
					Return(chain, nil)
			},
			wantErr: false,
			wantID:  "test-id",
		},
		{
			name: "chain not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "nonexistent-id").
					Return(model.Chain{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "test-id").
					Return(model.Chain{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}

func TestChainService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := chainMocks.NewMockChain(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		params    gDto.QueryParams
		filter    model.ListFilter
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name:   "successful get all",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: model.ListFilter{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Chain{{ID: "test-id", Name: "Northern Lodges"}}, nil)
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: model.ListFilter{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name:   "list error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: model.ListFilter{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), tt.params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
				assert.Len(t, result.Chains, tt.wantTotal)
			}
		})
	}
}

func TestChainService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := chainMocks.NewMockChain(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	existing := model.Chain{ID: "test-id", Name: "Northern Lodges"}

	tests := []struct {
		name      string
		id        string
		req       dto.UpdateChainRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			id:   "test-id",
			req:  dto.UpdateChainRequest{Name: "Northern Lodges Group"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "test-id").
					Return(existing, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "chain not found",
			id:   "nonexistent-id",
			req:  dto.UpdateChainRequest{Name: "Northern Lodges Group"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "nonexistent-id").
					Return(model.Chain{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChainService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := chainMocks.NewMockChain(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "test-id").
					Return(model.Chain{ID: "test-id"}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), "test-id").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "chain not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "nonexistent-id").
					Return(model.Chain{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
