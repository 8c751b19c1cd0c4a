// Package tlsutil 提供访问 FusionBrain API 所用的 HTTP 客户端，
// 统一 TLS 安全加固（TLS 1.2+，仅 AEAD 密码套件），并支持通过
// LoadCertPool / WithRootCAs 加载自定义 CA 证书。
package tlsutil
