package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestRegisterValidators_HHMM(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatalf("注册校验规则失败: %v", err)
	}

	valid := CreateTimeEntryRequest{
		Date:          "2025-07-10",
		StartTime:     "9:00",
		EndTime:       "18:30",
		BreakDuration: "00:45",
	}
	if err := binding.Validator.ValidateStruct(&valid); err != nil {
		t.Errorf("合法请求不应校验失败: %v", err)
	}

	for _, bad := range []string{"24:00", "9am", "09:60", ""} {
		req := valid
		req.EndTime = bad
		if err := binding.Validator.ValidateStruct(&req); err == nil {
			t.Errorf("end_time=%q 应校验失败", bad)
		}
	}
}

func TestUpdateTimeEntryRequest_OptionalFields(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatal(err)
	}

	req := UpdateTimeEntryRequest{Version: 1}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		t.Errorf("仅含 version 的更新请求应通过: %v", err)
	}

	bad := "25:00"
	req.StartTime = &bad
	if err := binding.Validator.ValidateStruct(&req); err == nil {
		t.Error("非法 start_time 应校验失败")
	}
}

func TestPaginationRequest_Defaults(t *testing.T) {
	var p PaginationRequest
	if p.GetPage() != 1 || p.GetPageSize() != DefaultPageSize || p.GetOffset() != 0 {
		t.Errorf("默认分页异常: page=%d size=%d offset=%d", p.GetPage(), p.GetPageSize(), p.GetOffset())
	}

	p = PaginationRequest{Page: 3, PageSize: 20}
	if p.GetOffset() != 40 {
		t.Errorf("期望 offset=40，实际=%d", p.GetOffset())
	}
}
