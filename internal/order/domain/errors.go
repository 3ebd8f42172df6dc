package domain

import "errors"

// 业务错误只有以下四类；存储等基础设施错误原样向上传播，由接口层兜底。
var (
	// ErrUserNotFound 引用的用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrAssetNotRecognized 资产代码无法识别
	ErrAssetNotRecognized = errors.New("asset not recognized")
	// ErrOrderNotFound 订单不存在或已取消（两者对外不可区分）
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderCancellation 已完成的订单不可取消
	ErrOrderCancellation = errors.New("completed order cannot be cancelled")
)
