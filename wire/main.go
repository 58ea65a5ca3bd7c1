/*
Package wire は、プロキシとの間のワイヤレベルのプロトコルを定義するパッケージです。
このパッケージは、フレームにエンコードされたメッセージの送受信、リクエストとリプライの
相関付け、およびハートビートによる死活監視を提供します。
*/
package wire
