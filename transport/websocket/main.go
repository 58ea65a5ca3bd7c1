/*
Package websocket は、 WebSocket を使用したトランスポートを提供するパッケージです。
*/
package websocket

/*
Name は、本トランスポートの名称です。
*/
const Name = "websocket"
