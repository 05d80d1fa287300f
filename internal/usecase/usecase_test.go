package usecase_test

import (
	"context"
	"testing"
	"time"

	"riseup-backend/internal/domain"
	"riseup-backend/internal/usecase"
	"riseup-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) Upsert(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchByEmployer(ctx context.Context, userID int64) ([]domain.Job, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByEmployer(ctx context.Context, userID int64) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CountByJob(ctx context.Context, jobID int64) (int64, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobID, applicantID int64) (bool, error) {
	args := m.Called(ctx, jobID, applicantID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) CreateConversation(ctx context.Context, title string) (*domain.Conversation, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}
func (m *MockChatRepo) GetConversation(ctx context.Context, id int64) (*domain.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}
func (m *MockChatRepo) DeleteConversation(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockChatRepo) CreateMessage(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockChatRepo) GetMessages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockChatRepo) ClearAudioBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}
func (m *MockInterviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Interview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) SetResults(ctx context.Context, id int64, transcript []domain.TranscriptEntry, feedback *domain.FeedbackReport, score int) (*domain.Interview, error) {
	args := m.Called(ctx, id, transcript, feedback, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}

// fakeFeedbackGenerator returns a canned grading result.
type fakeFeedbackGenerator struct {
	result *ai.FeedbackResult
	err    error
}

func (f *fakeFeedbackGenerator) GenerateInterviewFeedback(_ context.Context, _ string, _ []ai.Turn) (*ai.FeedbackResult, error) {
	return f.result, f.err
}

func TestRegister(t *testing.T) {
	t.Run("Should default role to student", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockResumeRepo))

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, domain.RoleStudent, u.Role)
			assert.NotEqual(t, "secret123", u.Password) // stored hashed
		})

		user, err := uc.Register(context.Background(), &domain.User{Username: "amina", Name: "Amina", Email: "amina@example.com"}, "secret123")
		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("Should reject unknown role", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockResumeRepo))

		_, err := uc.Register(context.Background(), &domain.User{Username: "amina", Role: "admin"}, "secret123")
		assert.Error(t, err)
	})

	t.Run("Should surface duplicate username as bad request", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockResumeRepo))

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateUsername)

		_, err := uc.Register(context.Background(), &domain.User{Username: "amina"}, "secret123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already taken")
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	stored := &domain.User{ID: 1, Username: "amina", Password: string(hash), Role: domain.RoleStudent}

	t.Run("Should succeed with the right password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockResumeRepo))
		mockRepo.On("GetByUsername", mock.Anything, "amina").Return(stored, nil)

		user, err := uc.Login(context.Background(), "amina", "correct-horse")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("Should fail with the wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockResumeRepo))
		mockRepo.On("GetByUsername", mock.Anything, "amina").Return(stored, nil)

		_, err := uc.Login(context.Background(), "amina", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password")
	})

	t.Run("Should not reveal whether the user exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockResumeRepo))
		mockRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(context.Background(), "ghost", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password")
	})
}

func TestCreateJobRoleGate(t *testing.T) {
	mockJobRepo := new(MockJobRepo)
	mockAppRepo := new(MockApplicationRepo)
	uc := usecase.NewJobUsecase(mockJobRepo, mockAppRepo)

	t.Run("Should reject students", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleStudent)
		_, err := uc.CreateJob(ctx, &domain.Job{Title: "Junior Dev", Type: domain.JobTypeFullTime, PostedBy: 2})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Students cannot post jobs")
	})

	t.Run("Should allow employers", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleEmployer)
		mockJobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.CreateJob(ctx, &domain.Job{Title: "Junior Dev", Type: domain.JobTypeFullTime, PostedBy: 2})
		assert.NoError(t, err)
		assert.NotNil(t, job)
	})

	t.Run("Should reject unknown job type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleEmployer)
		_, err := uc.CreateJob(ctx, &domain.Job{Title: "Junior Dev", Type: "gig", PostedBy: 2})
		assert.Error(t, err)
	})
}

func TestApplyDuplicate(t *testing.T) {
	job := &domain.Job{ID: 10, Title: "Junior Dev"}

	t.Run("Should reject a second application to the same job", func(t *testing.T) {
		mockJobRepo := new(MockJobRepo)
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", mock.Anything, int64(10)).Return(job, nil)
		mockAppRepo.On("CheckExists", mock.Anything, int64(10), int64(1)).Return(true, nil)

		_, err := uc.Apply(context.Background(), 1, 10, "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should map the unique index violation when the check races", func(t *testing.T) {
		mockJobRepo := new(MockJobRepo)
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", mock.Anything, int64(10)).Return(job, nil)
		mockAppRepo.On("CheckExists", mock.Anything, int64(10), int64(1)).Return(false, nil)
		mockAppRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateApplication)

		_, err := uc.Apply(context.Background(), 1, 10, "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should fail when the job does not exist", func(t *testing.T) {
		mockJobRepo := new(MockJobRepo)
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(context.Background(), 1, 99, "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should carry cover letter and resume URL", func(t *testing.T) {
		mockJobRepo := new(MockJobRepo)
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", mock.Anything, int64(10)).Return(job, nil)
		mockAppRepo.On("CheckExists", mock.Anything, int64(10), int64(1)).Return(false, nil)
		mockAppRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.NotNil(t, app.CoverLetter)
			assert.Equal(t, "I care a lot", *app.CoverLetter)
			assert.NotNil(t, app.ResumeURL)
		})

		_, err := uc.Apply(context.Background(), 1, 10, "I care a lot", "https://example.com/cv.pdf")
		assert.NoError(t, err)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	t.Run("Should reject students", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))

		_, err := uc.UpdateStatus(context.Background(), domain.RoleStudent, 5, domain.ApplicationStatusAccepted)
		assert.Error(t, err)
	})

	t.Run("Should reject an unknown status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))

		_, err := uc.UpdateStatus(context.Background(), domain.RoleEmployer, 5, "Shortlisted")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid application status")
	})

	t.Run("Should accept every known status", func(t *testing.T) {
		for _, status := range []string{
			domain.ApplicationStatusApplied,
			domain.ApplicationStatusUnderReview,
			domain.ApplicationStatusAccepted,
			domain.ApplicationStatusRejected,
		} {
			mockAppRepo := new(MockApplicationRepo)
			uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
			mockAppRepo.On("UpdateStatus", mock.Anything, int64(5), status).Return(&domain.Application{ID: 5, Status: status}, nil)

			app, err := uc.UpdateStatus(context.Background(), domain.RoleEmployer, 5, status)
			assert.NoError(t, err)
			assert.Equal(t, status, app.Status)
		}
	})
}

func TestListApplicationsByRole(t *testing.T) {
	t.Run("Students see their own applications", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
		mockAppRepo.On("GetByUser", mock.Anything, int64(1)).Return([]domain.Application{{ID: 1}}, nil)

		apps, err := uc.ListForUser(context.Background(), 1, domain.RoleStudent)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
		mockAppRepo.AssertNotCalled(t, "GetByEmployer", mock.Anything, mock.Anything)
	})

	t.Run("Employers see applications to their postings", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
		mockAppRepo.On("GetByEmployer", mock.Anything, int64(2)).Return([]domain.Application{{ID: 1}, {ID: 2}}, nil)

		apps, err := uc.ListForUser(context.Background(), 2, domain.RoleEmployer)
		assert.NoError(t, err)
		assert.Len(t, apps, 2)
	})
}

func TestSaveResumeOwnership(t *testing.T) {
	mockResumeRepo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(mockResumeRepo)

	mockResumeRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Resume")).Return(nil).Run(func(args mock.Arguments) {
		r := args.Get(1).(*domain.Resume)
		assert.Equal(t, int64(7), r.UserID)
	})

	// Resume arrives with no user set; the caller's identity wins
	saved, err := uc.SaveResume(context.Background(), 7, &domain.Resume{
		PersonalInfo: domain.PersonalInfo{Name: "Amina", Email: "amina@example.com"},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), saved.UserID)
}

func TestStartInterview(t *testing.T) {
	t.Run("Should link a conversation named after the job title", func(t *testing.T) {
		mockChat := new(MockChatRepo)
		mockInterview := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(mockInterview, mockChat, &fakeFeedbackGenerator{})

		mockChat.On("CreateConversation", mock.Anything, "Interview: Backend Engineer").Return(&domain.Conversation{ID: 3}, nil)
		mockInterview.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)

		interview, err := uc.StartInterview(context.Background(), 1, "Backend Engineer")
		assert.NoError(t, err)
		assert.NotNil(t, interview.ConversationID)
		assert.Equal(t, int64(3), *interview.ConversationID)
		assert.NotNil(t, interview.JobTitle)
	})

	t.Run("Should fall back to a general title", func(t *testing.T) {
		mockChat := new(MockChatRepo)
		mockInterview := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(mockInterview, mockChat, &fakeFeedbackGenerator{})

		mockChat.On("CreateConversation", mock.Anything, "Interview: General").Return(&domain.Conversation{ID: 4}, nil)
		mockInterview.On("Create", mock.Anything, mock.Anything).Return(nil)

		interview, err := uc.StartInterview(context.Background(), 1, "")
		assert.NoError(t, err)
		assert.Nil(t, interview.JobTitle)
	})
}

func TestGenerateFeedback(t *testing.T) {
	convID := int64(3)
	jobTitle := "Backend Engineer"

	t.Run("Should store transcript, feedback and score together", func(t *testing.T) {
		mockChat := new(MockChatRepo)
		mockInterview := new(MockInterviewRepo)
		gen := &fakeFeedbackGenerator{result: &ai.FeedbackResult{
			Score: 82,
			Feedback: ai.FeedbackContent{
				Strengths:    []string{"clear answers"},
				Improvements: []string{"ask more questions"},
				Summary:      "Solid performance.",
			},
		}}
		uc := usecase.NewInterviewUsecase(mockInterview, mockChat, gen)

		mockInterview.On("GetByID", mock.Anything, int64(9)).Return(&domain.Interview{ID: 9, ConversationID: &convID, JobTitle: &jobTitle}, nil)
		mockChat.On("GetMessages", mock.Anything, convID).Return([]domain.Message{
			{Role: "assistant", Content: "Tell me about yourself."},
			{Role: "user", Content: "I build backends."},
		}, nil)
		mockInterview.On("SetResults", mock.Anything, int64(9), mock.Anything, mock.Anything, 82).
			Return(&domain.Interview{ID: 9, Score: intPtr(82)}, nil).
			Run(func(args mock.Arguments) {
				transcript := args.Get(2).([]domain.TranscriptEntry)
				assert.Len(t, transcript, 2)
				feedback := args.Get(3).(*domain.FeedbackReport)
				assert.Equal(t, []string{"clear answers"}, feedback.Strengths)
				assert.Equal(t, "Solid performance.", feedback.Summary)
			})

		updated, err := uc.GenerateFeedback(context.Background(), 9)
		assert.NoError(t, err)
		assert.Equal(t, 82, *updated.Score)
	})

	t.Run("Should fail without a linked conversation", func(t *testing.T) {
		mockInterview := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(mockInterview, new(MockChatRepo), &fakeFeedbackGenerator{})

		mockInterview.On("GetByID", mock.Anything, int64(9)).Return(&domain.Interview{ID: 9}, nil)

		_, err := uc.GenerateFeedback(context.Background(), 9)
		assert.Error(t, err)
	})

	t.Run("Should fail on an empty conversation", func(t *testing.T) {
		mockChat := new(MockChatRepo)
		mockInterview := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(mockInterview, mockChat, &fakeFeedbackGenerator{})

		mockInterview.On("GetByID", mock.Anything, int64(9)).Return(&domain.Interview{ID: 9, ConversationID: &convID}, nil)
		mockChat.On("GetMessages", mock.Anything, convID).Return([]domain.Message{}, nil)

		_, err := uc.GenerateFeedback(context.Background(), 9)
		assert.Error(t, err)
	})
}

func TestPostMessage(t *testing.T) {
	t.Run("Should reject an unknown conversation", func(t *testing.T) {
		mockChat := new(MockChatRepo)
		uc := usecase.NewChatUsecase(mockChat)
		mockChat.On("GetConversation", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.PostMessage(context.Background(), 99, "user", "hello", "")
		assert.Error(t, err)
	})

	t.Run("Should only attach audio when present", func(t *testing.T) {
		mockChat := new(MockChatRepo)
		uc := usecase.NewChatUsecase(mockChat)
		mockChat.On("GetConversation", mock.Anything, int64(3)).Return(&domain.Conversation{ID: 3}, nil)
		mockChat.On("CreateMessage", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)

		msg, err := uc.PostMessage(context.Background(), 3, "user", "hello", "")
		assert.NoError(t, err)
		assert.Nil(t, msg.Audio)

		msg, err = uc.PostMessage(context.Background(), 3, "user", "hello again", "bXAzZGF0YQ==")
		assert.NoError(t, err)
		assert.NotNil(t, msg.Audio)
	})
}

func TestSeedCourses(t *testing.T) {
	t.Run("Should seed only when the catalog is empty", func(t *testing.T) {
		mockCourseRepo := new(MockCourseRepo)
		uc := usecase.NewCourseUsecase(mockCourseRepo)

		mockCourseRepo.On("Count", mock.Anything).Return(int64(0), nil)
		mockCourseRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Course")).Return(nil)

		assert.NoError(t, uc.SeedCourses(context.Background()))
		mockCourseRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("Should be a no-op when courses exist", func(t *testing.T) {
		mockCourseRepo := new(MockCourseRepo)
		uc := usecase.NewCourseUsecase(mockCourseRepo)

		mockCourseRepo.On("Count", mock.Anything).Return(int64(4), nil)

		assert.NoError(t, uc.SeedCourses(context.Background()))
		mockCourseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}
func (m *MockCourseRepo) Fetch(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}
func (m *MockCourseRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func intPtr(n int) *int { return &n }
